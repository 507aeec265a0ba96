package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/tako/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== TAKO LEVEL GENERATOR ===")

		w := getInt(reader, "Width [Odd prefered] (default 19): ", 19)
		h := getInt(reader, "Height [Odd prefered] (default 15): ", 15)
		braid := getFloat(reader, "Braiding Factor [0.0 - 1.0] (default 0.3): ", 0.3)
		enemies := getInt(reader, "Enemies (default 3): ", 3)
		seed := int64(getInt(reader, "Seed (default 0 = random): ", 0))

		cfg := maze.GenConfig{
			Width:    w,
			Height:   h,
			Braiding: braid,
			Enemies:  enemies,
			Seed:     seed,
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		layout, err := maze.GenerateLayout(cfg)
		dur := time.Since(startT)
		if err != nil {
			fmt.Printf("Failed: %v\n", err)
			continue
		}

		lvl, err := maze.Load(layout)
		if err != nil {
			fmt.Printf("Generated layout does not load: %v\n", err)
			continue
		}

		gw, gh := lvl.Grid.Size()
		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Grid Dimensions: %dx%d\n", gw, gh)
		fmt.Printf("Enemies: %d  Pickups: %d\n", len(lvl.Enemies), len(lvl.Pickups))

		draw(layout)

		fmt.Print("\nSave to file (empty to skip): ")
		path, _ := reader.ReadString('\n')
		if path = strings.TrimSpace(path); path != "" {
			if err := os.WriteFile(path, []byte(layout), 0644); err != nil {
				fmt.Printf("Save failed: %v\n", err)
			} else {
				fmt.Printf("Saved %s (play it with: tako -level %s)\n", path, path)
			}
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, err := reader.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// draw prints the layout with block walls; rows print top-down as stored
func draw(layout string) {
	for _, line := range strings.Split(strings.TrimRight(layout, "\n"), "\n") {
		for _, r := range line {
			switch r {
			case maze.TileWall:
				fmt.Print("█")
			case maze.TileOpen:
				fmt.Print("·")
			default:
				fmt.Print(string(r))
			}
		}
		fmt.Println()
	}
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return min(max(v, 0.0), 1.0)
}
