// file: internals/helpers/oss/convert_image.go
package helperOSS

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Re-encode settings for uploaded images. Photos go out as lossy webp
// bounded to MaxW x MaxH.
const (
	webpMaxW    = 1600
	webpMaxH    = 1600
	webpQuality = 80
)

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("unsupported image type: %s", ct)
	}
}

func fitWithin(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}
	resized := imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	// imaging.Fit returns NRGBA; draw once more to guarantee the format
	// webp.Encode handles without surprises.
	dst := image.NewRGBA(resized.Bounds())
	draw.CatmullRom.Scale(dst, dst.Bounds(), resized, resized.Bounds(), draw.Over, nil)
	return dst
}

// EncodeToWebP decodes jpeg/png/webp bytes and re-encodes as bounded lossy
// webp.
func EncodeToWebP(all []byte) ([]byte, error) {
	img, err := decodeImage(all)
	if err != nil {
		return nil, err
	}
	img = fitWithin(img, webpMaxW, webpMaxH)

	var out bytes.Buffer
	if err := webp.Encode(&out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// UploadImageAsWebP converts one multipart image and stores it under
// prefix; returns URL and object key.
func UploadImageAsWebP(fh *multipart.FileHeader, prefix string) (url, key string, err error) {
	if fh.Size > MaxUploadSize {
		return "", "", fmt.Errorf("image too large: %d bytes", fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return "", "", err
	}
	converted, err := EncodeToWebP(buf.Bytes())
	if err != nil {
		return "", "", err
	}

	name := fh.Filename
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	key = ObjectKey(prefix, name+".webp")
	url, err = UploadBytes(key, converted, "image/webp")
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}
