package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/warehouse-mapf/internal/model"
)

const chargePrefix = "charge "

type rawRobot struct {
	id  model.RobotID
	pos model.SpacePoint
}

// ParseInstance reads the text grid format from r: one or more wall-bordered
// grid lines, a "charge <N>" line, a "packages" line, then one delivery per
// remaining line. It returns a wrapped sentinel error on any malformed
// input; callers map that to the program's exit code 1.
func ParseInstance(r io.Reader) (*model.Instance, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInstance
	}

	width := len(lines[0]) - 2
	if width < 0 {
		return nil, fmt.Errorf("%w: line 0 too short", ErrMalformedGrid)
	}

	var shelves []model.Shelf
	var chargers []model.Charger
	var rawRobots []rawRobot

	i := 0
	for ; i < len(lines); i++ {
		l := lines[i]
		if l == "" || l[0] != '#' {
			break
		}
		if len(l) != width+2 {
			return nil, fmt.Errorf("%w: line %d has the wrong length", ErrMalformedGrid, i)
		}

		y := i - 1
		for k := 1; k < len(l)-1; k++ {
			x := k - 1
			c := l[k]
			switch {
			case c >= 'A' && c <= 'Z':
				shelves = append(shelves, model.Shelf{Letter: c, Position: model.SpacePoint{X: x, Y: y}})
			case c == '_':
				chargers = append(chargers, model.Charger{Position: model.SpacePoint{X: x, Y: y}})
			case c >= '0' && c <= '9':
				rawRobots = append(rawRobots, rawRobot{id: model.RobotID(c - '0'), pos: model.SpacePoint{X: x, Y: y}})
			}
		}
	}

	height := i - 2
	if height < 0 {
		return nil, fmt.Errorf("%w: no grid rows found", ErrMalformedGrid)
	}

	if i >= len(lines) || !strings.HasPrefix(lines[i], "charge") {
		return nil, fmt.Errorf("%w: expected a \"charge <N>\" line", ErrMissingHeader)
	}
	if len(lines[i]) < len(chargePrefix) {
		return nil, fmt.Errorf("%w: malformed charge line", ErrMissingHeader)
	}
	maxCharge, convErr := strconv.Atoi(strings.TrimSpace(lines[i][len(chargePrefix):]))
	if convErr != nil {
		return nil, fmt.Errorf("%w: invalid charge value: %v", ErrMissingHeader, convErr)
	}
	i++

	if i >= len(lines) || !strings.HasPrefix(lines[i], "packages") {
		return nil, fmt.Errorf("%w: expected a \"packages\" line", ErrMissingHeader)
	}
	i++

	var deliveries []model.Delivery
	for ; i < len(lines); i++ {
		line := lines[i]
		if len(line) < 5 {
			return nil, fmt.Errorf("%w: line %d too short", ErrMalformedDelivery, i)
		}
		deliveries = append(deliveries, model.Delivery{
			ID:      line[0],
			Pickup:  line[2],
			Dropoff: line[4],
		})
	}

	robots := make([]*model.Robot, 0, len(rawRobots))
	for _, rr := range rawRobots {
		robots = append(robots, model.NewRobot(rr.id, rr.pos, maxCharge))
	}

	return &model.Instance{
		Grid:       model.Grid{Width: width, Height: height},
		MaxCharge:  maxCharge,
		Shelves:    shelves,
		Chargers:   chargers,
		Robots:     robots,
		Deliveries: deliveries,
	}, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return lines, nil
}
