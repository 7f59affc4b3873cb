// internal/ui/fonts.go
package ui

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces bundles the two text sizes the HUD uses.
type Faces struct {
	Regular font.Face
	Title   font.Face
}

// LoadFaces parses the bundled Go font once at startup.
func LoadFaces() *Faces {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	return &Faces{
		Regular: newFace(tt, 16),
		Title:   newFace(tt, 32),
	}
}

func newFace(tt *opentype.Font, size float64) font.Face {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	return face
}
