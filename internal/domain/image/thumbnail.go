package image

import (
	"image"
	"image/jpeg"
	"io"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/gift"
)

const (
	thumbMaxEdge = 320
	thumbQuality = 85
)

// renderThumbnail decodes src, fits it within thumbMaxEdge on the long
// edge and writes a JPEG. Unsupported or corrupt input returns the decode
// error; the caller decides what that means for the upload.
func renderThumbnail(src io.Reader, dst io.Writer) error {
	img, _, err := image.Decode(src)
	if err != nil {
		return err
	}

	g := gift.New(gift.ResizeToFit(thumbMaxEdge, thumbMaxEdge, gift.LanczosResampling))
	out := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(out, img)

	return jpeg.Encode(dst, out, &jpeg.Options{Quality: thumbQuality})
}
