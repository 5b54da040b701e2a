package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"wallet-engine/internal/core/domain"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	margin     = 16
	lineHeight = 18
	width      = 820
	maxRows    = 500
)

var (
	background = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfc, A: 0xff}
	ink        = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	sentInk    = color.RGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 0xff}
	recvInk    = color.RGBA{R: 0x04, G: 0x78, B: 0x57, A: 0xff}
	rule       = color.RGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff}
)

// PNGRenderer draws a transaction list as a fixed-width table.
type PNGRenderer struct {
	Title string
}

// NewPNGRenderer creates a renderer with the given heading.
func NewPNGRenderer(title string) *PNGRenderer {
	return &PNGRenderer{Title: title}
}

// Render implements ports.SnapshotRenderer.
func (r *PNGRenderer) Render(txs []domain.Transaction) ([]byte, error) {
	rows := txs
	truncated := 0
	if len(rows) > maxRows {
		truncated = len(rows) - maxRows
		rows = rows[:maxRows]
	}

	lines := len(rows) + 3
	if truncated > 0 {
		lines++
	}
	img := image.NewRGBA(image.Rect(0, 0, width, margin*2+lines*lineHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	y := margin + lineHeight
	r.text(img, margin, y, ink, r.Title)
	y += lineHeight
	r.text(img, margin, y, ink, fmt.Sprintf("%-10s %-9s %16s %-6s %-28s %s", "ID", "TYPE", "AMOUNT", "CCY", "RECIPIENT", "DATE"))
	for x := margin; x < width-margin; x++ {
		img.Set(x, y+4, rule)
	}

	for _, tx := range rows {
		y += lineHeight
		c := recvInk
		if tx.Type == domain.TransactionTypeSent {
			c = sentInk
		}
		r.text(img, margin, y, c, fmt.Sprintf("%-10s %-9s %16s %-6s %-28s %s",
			clip(tx.ID, 10), tx.Type, clip(tx.Amount.String(), 16), clip(tx.Currency, 6), clip(tx.Recipient, 28), clip(tx.Date, 25)))
	}
	if truncated > 0 {
		y += lineHeight
		r.text(img, margin, y, ink, fmt.Sprintf("... %d more", truncated))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PNGRenderer) text(dst draw.Image, x, y int, c color.Color, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func clip(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "~"
}
