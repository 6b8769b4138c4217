package ioformat

import (
	"bufio"
	"io"
	"sort"

	"github.com/elektrokombinacija/warehouse-mapf/internal/model"
)

// WriteOutput writes the time-major output format: row t contains one
// character per robot, ordered by ascending robot id, giving that robot's
// action at tick t. The filler guarantees every robot's move string is the
// same length when it succeeds; if move strings are ragged (the filler was
// not run, or stopped at a robot that could not evade), robots shorter than
// the longest one are padded with Stay for the remaining rows rather than
// causing an out-of-range index.
func WriteOutput(w io.Writer, inst *model.Instance) error {
	robots := make([]*model.Robot, len(inst.Robots))
	copy(robots, inst.Robots)
	sort.Slice(robots, func(i, j int) bool { return robots[i].ID < robots[j].ID })

	length := 0
	for _, r := range robots {
		if len(r.MoveString) > length {
			length = len(r.MoveString)
		}
	}

	bw := bufio.NewWriter(w)
	row := make([]byte, len(robots))
	for t := 0; t < length; t++ {
		for ri, r := range robots {
			if t < len(r.MoveString) {
				row[ri] = byte(r.MoveString[t])
			} else {
				row[ri] = byte(model.Stay)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
