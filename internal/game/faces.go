package game

import "image/color"

// cardFace is the look of one card kind: a fill colour and a glyph.
type cardFace struct {
	Name  string
	Glyph string
	Fill  color.RGBA
	Ink   color.RGBA
}

// facePalette bounds CardKinds; pair id N is drawn with facePalette[N].
var facePalette = [...]cardFace{
	{Name: "ember", Glyph: "E", Fill: color.RGBA{R: 196, G: 62, B: 44, A: 255}, Ink: color.RGBA{R: 255, G: 226, B: 200, A: 255}},
	{Name: "frost", Glyph: "F", Fill: color.RGBA{R: 92, G: 164, B: 214, A: 255}, Ink: color.RGBA{R: 236, G: 248, B: 255, A: 255}},
	{Name: "storm", Glyph: "S", Fill: color.RGBA{R: 128, G: 84, B: 188, A: 255}, Ink: color.RGBA{R: 240, G: 226, B: 255, A: 255}},
	{Name: "grove", Glyph: "G", Fill: color.RGBA{R: 70, G: 150, B: 82, A: 255}, Ink: color.RGBA{R: 222, G: 250, B: 214, A: 255}},
	{Name: "tide", Glyph: "T", Fill: color.RGBA{R: 40, G: 110, B: 150, A: 255}, Ink: color.RGBA{R: 204, G: 240, B: 250, A: 255}},
	{Name: "sun", Glyph: "U", Fill: color.RGBA{R: 226, G: 178, B: 48, A: 255}, Ink: color.RGBA{R: 70, G: 44, B: 8, A: 255}},
	{Name: "stone", Glyph: "O", Fill: color.RGBA{R: 150, G: 132, B: 104, A: 255}, Ink: color.RGBA{R: 40, G: 32, B: 22, A: 255}},
	{Name: "bloom", Glyph: "B", Fill: color.RGBA{R: 214, G: 104, B: 160, A: 255}, Ink: color.RGBA{R: 255, G: 236, B: 246, A: 255}},
	{Name: "ash", Glyph: "A", Fill: color.RGBA{R: 88, G: 88, B: 96, A: 255}, Ink: color.RGBA{R: 230, G: 230, B: 236, A: 255}},
	{Name: "moon", Glyph: "M", Fill: color.RGBA{R: 210, G: 214, B: 230, A: 255}, Ink: color.RGBA{R: 36, G: 40, B: 70, A: 255}},
	{Name: "rust", Glyph: "R", Fill: color.RGBA{R: 160, G: 82, B: 40, A: 255}, Ink: color.RGBA{R: 255, G: 220, B: 190, A: 255}},
	{Name: "void", Glyph: "V", Fill: color.RGBA{R: 24, G: 20, B: 36, A: 255}, Ink: color.RGBA{R: 190, G: 160, B: 255, A: 255}},
}

// faceFor returns the face drawn for a pair id.
func faceFor(pairID int) cardFace {
	if pairID < 0 {
		pairID = -pairID
	}
	return facePalette[pairID%len(facePalette)]
}
