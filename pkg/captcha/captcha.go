package captcha

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math/rand"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// Length 验证码位数
	Length = 4

	width  = 80
	height = 30
	scale  = 2
)

// Captcha 一次生成的验证码
type Captcha struct {
	Code string // 明文数字，写入会话
	Img  string // data URI，返回前端
}

// Generate 生成 4 位互不相同的数字验证码及对应图片
func Generate() (*Captcha, error) {
	code := randomDigits()
	img, err := render(code)
	if err != nil {
		return nil, err
	}
	return &Captcha{Code: code, Img: img}, nil
}

func randomDigits() string {
	perm := rand.Perm(10)
	b := make([]byte, Length)
	for i := 0; i < Length; i++ {
		b[i] = byte('0' + perm[i])
	}
	return string(b)
}

// render 先以 basicfont 绘制小图，再放大并叠加噪点
func render(code string) (string, error) {
	small := image.NewRGBA(image.Rect(0, 0, width/scale, height/scale))
	draw.Draw(small, small.Bounds(), image.NewUniform(color.RGBA{240, 240, 240, 255}), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	x := 4
	for _, ch := range code {
		d := &font.Drawer{
			Dst:  small,
			Src:  image.NewUniform(randomInk()),
			Face: face,
			Dot:  fixed.P(x, 11+rand.Intn(3)),
		}
		d.DrawString(string(ch))
		x += 8 + rand.Intn(2)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			dst.Set(px, py, small.At(px/scale, py/scale))
		}
	}
	addNoise(dst)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return "", fmt.Errorf("编码验证码图片失败: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func randomInk() color.RGBA {
	return color.RGBA{
		R: uint8(rand.Intn(120)),
		G: uint8(rand.Intn(120)),
		B: uint8(rand.Intn(120)),
		A: 255,
	}
}

func addNoise(img *image.RGBA) {
	b := img.Bounds()
	for i := 0; i < b.Dx()*b.Dy()/12; i++ {
		img.Set(rand.Intn(b.Dx()), rand.Intn(b.Dy()), randomInk())
	}
}
