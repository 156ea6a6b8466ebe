package service

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"

	"quickmenu/internal/domain"
)

// MenuQRGenerator renders the menu URL for a cafe as a PNG data URL. It is a
// pure function of its input and keeps no state.
type MenuQRGenerator struct {
	DefaultBaseURL string
}

func (g MenuQRGenerator) Generate(cafeID, baseURL string) (*domain.MenuQR, error) {
	if cafeID == "" {
		return nil, ErrMissingFields
	}
	base := baseURL
	if base == "" {
		base = g.DefaultBaseURL
	}
	menuURL := fmt.Sprintf("%s/menu/%s", base, cafeID)

	png, err := qrcode.Encode(menuURL, qrcode.Medium, 300)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return &domain.MenuQR{
		URL:    menuURL,
		QRCode: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}

var _ QRGenerator = MenuQRGenerator{}
