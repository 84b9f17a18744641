package image

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
)

const jpegQuality = 85

// Process resmi decode edip optimize ederek yeniden kodlar. Decode edilmiş
// resim webp türev üretimi için ayrıca döner.
func Process(file *multipart.FileHeader) (*bytes.Buffer, image.Image, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, nil, "", fmt.Errorf("could not open file: %v", err)
	}
	defer src.Close()

	img, format, err := image.Decode(src)
	if err != nil {
		return nil, nil, "", fmt.Errorf("could not decode image: %v", err)
	}

	buf := new(bytes.Buffer)

	switch format {
	case "jpeg":
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality})
	case "png":
		err = png.Encode(buf, img)
	case "webp":
		err = webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: jpegQuality})
	default:
		return nil, nil, "", fmt.Errorf("unsupported image format: %s", format)
	}

	if err != nil {
		return nil, nil, "", fmt.Errorf("could not encode image: %v", err)
	}

	contentType := fmt.Sprintf("image/%s", format)
	return buf, img, contentType, nil
}

// EncodeWebP türev kopya için webp kodlar
func EncodeWebP(img image.Image) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("could not encode webp: %v", err)
	}
	return buf, nil
}
