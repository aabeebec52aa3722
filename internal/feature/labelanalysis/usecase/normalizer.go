package usecase

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"winecellar_backend/internal/feature/labelanalysis/domain"
)

const (
	// DefaultMaxDimension は外部モデルへ送る画像の長辺の既定上限（ピクセル）です。
	DefaultMaxDimension = 1024
	// jpegQuality は転送用JPEGの品質です。ペイロードサイズを抑えるための固定値です。
	jpegQuality = 85
)

// NormalizeImage はアップロードされたバイト列を検証し、長辺がmaxDim以下になるよう
// 縮小してJPEGに再エンコードします。縦横比は維持され、拡大は行いません。
// デコードできない入力はすべてdomain.ErrInvalidImageになります。
func NormalizeImage(raw []byte, maxDim int) ([]byte, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}

	// 先にヘッダだけ検証してから全デコードする二段構え。
	// 途中で切れた画像はヘッダ検証を通過して全デコードで失敗する。
	if _, _, err := image.DecodeConfig(bytes.NewReader(raw)); err != nil {
		if _, err := webp.DecodeConfig(bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
		}
	}

	img, err := decodeImage(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxDim || h > maxDim {
		if w >= h {
			img = imaging.Resize(img, maxDim, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, maxDim, imaging.Lanczos)
		}
	}

	// JPEGに透過はないため、アルファ付き・パレット画像は白背景に合成して
	// 3チャンネルへ落とす。不透明な画像に対しては実質no-op。
	flat := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode normalized image: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeImage は登録済みデコーダ（JPEG/PNG/WebP）でデコードし、
// 失敗した場合のみchai2010/webpでのデコードを試します。
func decodeImage(raw []byte) (image.Image, error) {
	if img, _, err := image.Decode(bytes.NewReader(raw)); err == nil {
		return img, nil
	}
	img, err := webp.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unknown or unsupported image format: %w", err)
	}
	return img, nil
}
