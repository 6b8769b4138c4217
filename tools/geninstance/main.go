// Command geninstance generates randomized warehouse instances in the
// text grid format internal/ioformat consumes, for exercising the planner
// at scale.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
)

// params mirrors the teacher's InstanceParams config-struct idiom, scaled
// down to this system's plain 2D grid model.
type params struct {
	seed       int64
	width      int
	height     int
	robots     int
	shelves    int
	chargers   int
	deliveries int
	charge     int
	out        string
}

func main() {
	p := params{}
	flag.Int64Var(&p.seed, "seed", 1, "RNG seed")
	flag.IntVar(&p.width, "width", 10, "grid width")
	flag.IntVar(&p.height, "height", 10, "grid height")
	flag.IntVar(&p.robots, "robots", 3, "number of robots (max 10)")
	flag.IntVar(&p.shelves, "shelves", 5, "number of shelves (max 26)")
	flag.IntVar(&p.chargers, "chargers", 2, "number of chargers")
	flag.IntVar(&p.deliveries, "deliveries", 5, "number of deliveries")
	flag.IntVar(&p.charge, "charge", 100, "max robot charge")
	flag.StringVar(&p.out, "out", "", "output path (default: a generated instance-<uuid>.txt)")
	flag.Parse()

	if p.out == "" {
		p.out = fmt.Sprintf("instance-%s.txt", uuid.New().String())
	}

	if err := generate(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(p.out)
}

func generate(p params) error {
	if p.robots > 10 {
		return fmt.Errorf("geninstance: robots must be <= 10, got %d", p.robots)
	}
	if p.shelves > 26 {
		return fmt.Errorf("geninstance: shelves must be <= 26, got %d", p.shelves)
	}

	rng := rand.New(rand.NewSource(p.seed))
	grid := make([][]byte, p.height)
	for y := range grid {
		grid[y] = make([]byte, p.width)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}

	occupied := make(map[[2]int]bool)
	place := func(mark byte) (int, int) {
		for {
			x, y := rng.Intn(p.width), rng.Intn(p.height)
			if occupied[[2]int{x, y}] {
				continue
			}
			occupied[[2]int{x, y}] = true
			grid[y][x] = mark
			return x, y
		}
	}

	shelfLetters := make([]byte, 0, p.shelves)
	for i := 0; i < p.shelves; i++ {
		letter := byte('A' + i)
		place(letter)
		shelfLetters = append(shelfLetters, letter)
	}
	for i := 0; i < p.chargers; i++ {
		place('_')
	}
	for i := 0; i < p.robots; i++ {
		place(byte('0' + i))
	}

	out, err := os.Create(p.out)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	wall := make([]byte, p.width+2)
	for i := range wall {
		wall[i] = '#'
	}
	fmt.Fprintln(w, string(wall))
	for y := 0; y < p.height; y++ {
		fmt.Fprintf(w, "#%s#\n", string(grid[y]))
	}
	fmt.Fprintln(w, string(wall))

	fmt.Fprintf(w, "charge %d\n", p.charge)
	fmt.Fprintln(w, "packages")

	for i := 0; i < p.deliveries; i++ {
		pickup := shelfLetters[rng.Intn(len(shelfLetters))]
		dropoff := shelfLetters[rng.Intn(len(shelfLetters))]
		id := byte('p' + (i % 10))
		fmt.Fprintf(w, "%c %c %c\n", id, pickup, dropoff)
	}

	return nil
}
