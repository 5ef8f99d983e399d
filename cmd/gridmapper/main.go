package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gridmapper/internal/editor"
)

func main() {
	ebiten.SetWindowTitle("gridmapper")
	ebiten.SetWindowSize(editor.WindowWidth, editor.WindowHeight)
	if err := ebiten.RunGame(editor.New()); err != nil {
		log.Fatal(err)
	}
}
