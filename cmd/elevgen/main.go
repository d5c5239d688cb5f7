package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dandesousa/elevator-simulation/definition"
	"github.com/dandesousa/elevator-simulation/logger"
	"github.com/dandesousa/elevator-simulation/person"

	"github.com/rs/zerolog"
)

type floorList []int

func (floors *floorList) String() string {
	levels := make([]string, len(*floors))
	for i, level := range *floors {
		levels[i] = strconv.Itoa(level)
	}
	return strings.Join(levels, ",")
}

func (floors *floorList) Set(value string) error {
	level, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*floors = append(*floors, level)
	return nil
}

func main() {
	params := definition.DefaultGenerateParams()

	var lunchFloors floorList
	var workBegin, workEnd, lunchBegin, lunchEnd string
	var workLengthMins, lunchLengthMins int

	verbose := flag.Bool("v", false, "Verbose (debug) logging")
	output := flag.String("o", "-", "Output file, - for stdout")
	format := flag.String("format", "", "Output format, json or yaml (default from the output extension)")
	seed := flag.Int64("seed", 1, "Random seed")

	flag.IntVar(&params.People, "p", -1, "Number of people in the building")
	flag.IntVar(&params.Floors, "floors", params.Floors, "Number of floors")
	flag.IntVar(&params.Banks, "num_elevator_banks", params.Banks, "Number of elevator banks")
	flag.IntVar(&params.ElevatorsPerBank, "num_elevators_per_bank", params.ElevatorsPerBank, "Elevators in each bank")
	flag.IntVar(&params.Capacity, "elevator_capacity", params.Capacity, "People fitting in one elevator")
	flag.StringVar(&params.DispatchStrategy, "dispatch", params.DispatchStrategy, "Dispatch strategy of every bank")
	flag.StringVar(&params.CallStrategy, "call_strategy", params.CallStrategy,
		"Call strategy of every person: "+person.CALL_RANDOM+" or "+person.CALL_ALL)
	flag.StringVar(&workBegin, "work_begin", "6:00:00", "Earliest start of work")
	flag.StringVar(&workEnd, "work_end", "10:00:00", "Latest start of work")
	flag.IntVar(&workLengthMins, "work_length_mins", int(params.WorkLength.Minutes()), "Minutes spent at the office")
	flag.StringVar(&lunchBegin, "lunch_begin", "12:00:00", "Earliest start of lunch")
	flag.StringVar(&lunchEnd, "lunch_end", "13:00:00", "Latest start of lunch")
	flag.IntVar(&lunchLengthMins, "lunch_length_mins", int(params.LunchLength.Minutes()), "Minutes taken for lunch")
	flag.Var(&lunchFloors, "lunch_on_floor", "Floor where people eat lunch, repeatable")

	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.GetLoggerConfigured(level)

	if params.People < 0 || len(lunchFloors) == 0 {
		fmt.Fprintln(os.Stderr, "Missing flags -p or -lunch_on_floor, use flag -h to see usage")
		os.Exit(1)
	}

	clocks := []struct {
		value string
		dst   *time.Duration
	}{
		{workBegin, &params.WorkBegin},
		{workEnd, &params.WorkEnd},
		{lunchBegin, &params.LunchBegin},
		{lunchEnd, &params.LunchEnd},
	}

	for _, clock := range clocks {
		parsed, err := definition.ParseClock(clock.value)
		if err != nil {
			log.Error().Err(err).Msg("Parsing time of day")
			os.Exit(1)
		}
		*clock.dst = parsed
	}

	params.WorkLength = time.Duration(workLengthMins) * time.Minute
	params.LunchLength = time.Duration(lunchLengthMins) * time.Minute
	params.LunchFloors = lunchFloors

	def, err := definition.Generate(params, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Error().Err(err).Msg("Generating simulation")
		os.Exit(1)
	}

	outputFormat := definition.FormatOf(*output)
	if *format != "" {
		outputFormat, err = definition.ParseFormat(*format)
		if err != nil {
			log.Error().Err(err).Msg("Choosing output format")
			os.Exit(1)
		}
	}

	out := os.Stdout
	if *output != "-" {
		out, err = os.Create(*output)
		if err != nil {
			log.Error().Err(err).Msg("Creating output")
			os.Exit(1)
		}
		defer out.Close()
	}

	if err := definition.Write(out, outputFormat, def); err != nil {
		log.Error().Err(err).Msg("Writing simulation")
		os.Exit(1)
	}

	log.Debug().
		Int("people", params.People).
		Int("floors", params.Floors).
		Str("format", outputFormat.String()).
		Msg("Simulation generated")
}
