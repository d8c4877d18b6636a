// Package ui implements the chess board window using Ebitengine.
package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
	coordFontSize   = 11.0
)

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource

	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
	coordFace   *text.GoTextFace
)

func init() {
	initFonts()
}

func initFonts() {
	var err error
	regularSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load regular font: %v", err)
		return
	}
	boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
		boldSource = regularSource
	}

	regularFace = &text.GoTextFace{Source: regularSource, Size: defaultFontSize}
	boldFace = &text.GoTextFace{Source: boldSource, Size: titleFontSize}
	coordFace = &text.GoTextFace{Source: boldSource, Size: coordFontSize}
}

// GetRegularFace returns the regular font face.
func GetRegularFace() *text.GoTextFace {
	return regularFace
}

// GetBoldFace returns the bold font face.
func GetBoldFace() *text.GoTextFace {
	return boldFace
}

// GetCoordFace returns the small face used for board coordinates.
func GetCoordFace() *text.GoTextFace {
	return coordFace
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
