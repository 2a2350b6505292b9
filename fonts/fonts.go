package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Small   FontName = "small"
	Title   FontName = "title"
)

func (f FontName) Get() font.Face {
	LoadDefaults()
	return getFont(f)
}

var (
	fonts            = map[FontName]font.Face{}
	loadDefaultsOnce sync.Once
)

// LoadDefaults registers the Go fonts under the built-in names. Only the
// first call parses them.
func LoadDefaults() {
	loadDefaultsOnce.Do(loadDefaults)
}

func loadDefaults() {
	LoadFontWithSize(Regular, goregular.TTF, 14)
	LoadFontWithSize(Small, goregular.TTF, 10)
	LoadFontWithSize(Title, gobold.TTF, 32)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s could not be parsed: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
