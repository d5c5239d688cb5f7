package definition

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/dandesousa/elevator-simulation/dispatch"
	"github.com/dandesousa/elevator-simulation/person"
	"github.com/dandesousa/elevator-simulation/sim"
	"github.com/dandesousa/elevator-simulation/telemetry"
	"github.com/dandesousa/elevator-simulation/types"
)

func TestReadJSON(t *testing.T) {
	def, err := Read("testdata/simple.json")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	s, err := Build(def)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if s.Building.NumFloors() != 5 {
		t.Errorf("Expected 5 floors, got %d", s.Building.NumFloors())
	}

	banks := s.Banks()
	if len(banks) != 1 || len(banks[0].Elevators()) != 2 {
		t.Fatalf("Expected one bank with two elevators, got %d banks", len(banks))
	}
	if banks[0].UUID != "5b0c9a4e-6f3d-4b8e-9d54-7f1f0d2a6c11" {
		t.Errorf("Expected the bank to keep its uuid, got %s", banks[0].UUID)
	}

	second := banks[0].Elevators()[1].Model()
	if second.Location() != 5 {
		t.Errorf("Expected the second elevator to start at 5, got %d", second.Location())
	}
	if second.Timing().Travel != 3*time.Second || second.Timing().Open != types.DefaultTiming().Open {
		t.Errorf("Expected travel override only, got %+v", second.Timing())
	}

	persons := s.Persons()
	if len(persons) != 2 {
		t.Fatalf("Expected 2 people, got %d", len(persons))
	}
	events := persons[0].Schedule.Events()
	if len(events) != 2 || events[1].Description != person.UNKNOWN_DESCRIPTION {
		t.Errorf("Expected a defaulted description, got %+v", events)
	}
	if s.CallStrategyOf(persons[1]).Name() != person.CALL_ALL {
		t.Errorf("Expected the default call strategy, got %s", s.CallStrategyOf(persons[1]).Name())
	}
}

func TestReadYAML(t *testing.T) {
	s, err := Load("testdata/simple.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, ok := s.Banks()[0].Strategy().(dispatch.ShortestTime); !ok {
		t.Errorf("Expected the shortest time strategy")
	}
	if name := s.CallStrategyOf(s.Persons()[0]).Name(); name != person.CALL_RANDOM {
		t.Errorf("Expected random call strategy, got %s", name)
	}
}

func TestLoadedSimulationRuns(t *testing.T) {
	collector := &telemetry.Collector{}
	s, err := Load("testdata/simple.json", sim.WithSink(collector))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(collector.Trips) != 3 {
		t.Errorf("Expected 3 trips, got %d", len(collector.Trips))
	}
}

func TestInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"missing building", `{"elevator_banks": [], "people": []}`, "building"},
		{"missing banks", `{"building": {"floors": 3}, "people": []}`, "elevator_banks"},
		{"missing people", `{"building": {"floors": 3}, "elevator_banks": []}`, "people"},
		{"no floors", `{"building": {"floors": 0}, "elevator_banks": [], "people": []}`, "building.floors"},
		{"empty bank", `{"building": {"floors": 3}, "elevator_banks": [{"elevators": []}], "people": []}`, "elevator_banks[0].elevators"},
		{"negative capacity", `{"building": {"floors": 3}, "elevator_banks": [{"elevators": [{"capacity": -1}]}], "people": []}`, "elevator_banks[0].elevators[0].capacity"},
		{"negative delay", `{"building": {"floors": 3}, "elevator_banks": [{"elevators": [{"open_secs": -1}]}], "people": []}`, "elevator_banks[0].elevators[0].open_secs"},
		{"delay overflows duration", `{"building": {"floors": 3}, "elevator_banks": [{"elevators": [{"travel_secs": 1e12}]}], "people": []}`, "elevator_banks[0].elevators[0].travel_secs"},
	}

	for _, test := range tests {
		_, err := Decode(strings.NewReader(test.input), JSON)

		var configErr *types.ConfigError
		if !errors.As(err, &configErr) {
			t.Errorf("%s: Expected configuration error, got %v", test.name, err)
			continue
		}
		if configErr.Field != test.field {
			t.Errorf("%s: Expected field %s, got %s", test.name, test.field, configErr.Field)
		}
	}
}

func TestBuildRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{
			"unknown dispatch",
			`{"building": {"floors": 3}, "elevator_banks": [{"dispatch_strategy": "fastest", "elevators": [{}]}], "people": []}`,
			"elevator_banks[0].dispatch_strategy",
		},
		{
			"level out of range",
			`{"building": {"floors": 3}, "elevator_banks": [{"elevators": [{}]}], "people": [{"schedule": [{"start": 0, "level": 4}]}]}`,
			"people[0].schedule[0].level",
		},
		{
			"start after midnight",
			`{"building": {"floors": 3}, "elevator_banks": [{"elevators": [{}]}], "people": [{"schedule": [{"start": 90000, "level": 2}]}]}`,
			"people[0].schedule[0].start",
		},
		{
			"start overflows duration",
			`{"building": {"floors": 3}, "elevator_banks": [{"elevators": [{}]}], "people": [{"schedule": [{"start": 1e12, "level": 2}]}]}`,
			"people[0].schedule[0].start",
		},
		{
			"unknown call strategy",
			`{"building": {"floors": 3}, "elevator_banks": [{"elevators": [{}]}], "people": [{"elevator_call_strategy": "shout"}]}`,
			"people[0].elevator_call_strategy",
		},
		{
			"malformed uuid",
			`{"building": {"floors": 3}, "elevator_banks": [{"uuid": "nope", "elevators": [{}]}], "people": []}`,
			"elevator_banks[0].uuid",
		},
	}

	for _, test := range tests {
		def, err := Decode(strings.NewReader(test.input), JSON)
		if err != nil {
			t.Errorf("%s: Decode failed: %v", test.name, err)
			continue
		}

		_, err = Build(def)

		var configErr *types.ConfigError
		if !errors.As(err, &configErr) || !errors.Is(err, types.ErrConfiguration) {
			t.Errorf("%s: Expected configuration error, got %v", test.name, err)
			continue
		}
		if configErr.Field != test.field {
			t.Errorf("%s: Expected field %s, got %s", test.name, test.field, configErr.Field)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	s, err := Load("testdata/simple.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, format := range []Format{JSON, YAML} {
		var buf bytes.Buffer
		if err := Write(&buf, format, FromSimulation(s)); err != nil {
			t.Fatalf("Write %s failed: %v", format, err)
		}

		def, err := Decode(&buf, format)
		if err != nil {
			t.Fatalf("Decode %s failed: %v", format, err)
		}

		rebuilt, err := Build(def)
		if err != nil {
			t.Fatalf("Build %s failed: %v", format, err)
		}

		if rebuilt.Banks()[0].UUID != s.Banks()[0].UUID {
			t.Errorf("%s: Expected bank uuid %s, got %s", format, s.Banks()[0].UUID, rebuilt.Banks()[0].UUID)
		}
		if rebuilt.Persons()[1].UUID != s.Persons()[1].UUID {
			t.Errorf("%s: Expected generated person uuid to survive", format)
		}
		if len(rebuilt.Persons()[0].Schedule.Events()) != 2 {
			t.Errorf("%s: Expected the schedule to survive", format)
		}
		if travel := rebuilt.Banks()[0].Elevators()[1].Model().Timing().Travel; travel != 3*time.Second {
			t.Errorf("%s: Expected travel 3s, got %s", format, travel)
		}
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"day.json", JSON},
		{"day.yaml", YAML},
		{"DAY.YML", YAML},
		{"day", JSON},
	}

	for _, test := range tests {
		if format := FormatOf(test.path); format != test.expected {
			t.Errorf("Expected %s for %s, got %s", test.expected, test.path, format)
		}
	}
}

func TestGenerate(t *testing.T) {
	params := DefaultGenerateParams()
	params.People = 20
	params.LunchFloors = []int{3, 8}

	def, err := Generate(params, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(def.ElevatorBanks) != 1 || len(def.ElevatorBanks[0].Elevators) != 6 {
		t.Fatalf("Expected 1 bank of 6 elevators, got %+v", def.ElevatorBanks)
	}
	if len(def.People) != 20 {
		t.Fatalf("Expected 20 people, got %d", len(def.People))
	}

	for i, p := range def.People {
		if p.ElevatorCallStrategy != person.CALL_RANDOM {
			t.Errorf("Person %d: Expected random call strategy, got %s", i, p.ElevatorCallStrategy)
		}
		if len(p.Schedule) != 4 {
			t.Fatalf("Person %d: Expected 4 events, got %d", i, len(p.Schedule))
		}

		byDescription := make(map[string]EventDef)
		for _, event := range p.Schedule {
			byDescription[event.Description] = event
		}

		start := byDescription[START_WORK_DESCRIPTION]
		if start.Start < 6*3600 || start.Start > 10*3600 || start.Level < 2 || start.Level > 9 {
			t.Errorf("Person %d: Unexpected work start %+v", i, start)
		}
		if end := byDescription[END_WORK_DESCRIPTION]; end.Level != 1 || end.Start != start.Start+9*3600 {
			t.Errorf("Person %d: Unexpected work end %+v", i, end)
		}

		lunch := byDescription[LUNCH_DESCRIPTION]
		expectedLunch := 3
		if start.Level > 5 {
			expectedLunch = 8
		}
		if lunch.Level != expectedLunch || lunch.Start < 12*3600 || lunch.Start > 13*3600 {
			t.Errorf("Person %d: Unexpected lunch %+v for work on %d", i, lunch, start.Level)
		}
		if back := byDescription[BACK_TO_WORK]; back.Level != start.Level || back.Start != lunch.Start+45*60 {
			t.Errorf("Person %d: Unexpected return from lunch %+v", i, back)
		}
	}

	if _, err := Build(def); err != nil {
		t.Errorf("Expected the generated definition to build, got %v", err)
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	params := DefaultGenerateParams()
	params.People = 5
	params.LunchFloors = []int{2}

	first, _ := Generate(params, rand.New(rand.NewSource(11)))
	second, _ := Generate(params, rand.New(rand.NewSource(11)))

	for i := range first.People {
		for j := range first.People[i].Schedule {
			if first.People[i].Schedule[j] != second.People[i].Schedule[j] {
				t.Errorf("Expected identical schedules, got %+v and %+v", first.People[i].Schedule[j], second.People[i].Schedule[j])
			}
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	params := DefaultGenerateParams()
	params.People = 1

	if _, err := Generate(params, rand.New(rand.NewSource(1))); !errors.Is(err, types.ErrConfiguration) {
		t.Errorf("Expected a configuration error without lunch floors, got %v", err)
	}

	params.LunchFloors = []int{12}
	if _, err := Generate(params, rand.New(rand.NewSource(1))); !errors.Is(err, types.ErrInvalidFloor) {
		t.Errorf("Expected ErrInvalidFloor for a lunch floor above the building, got %v", err)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock    string
		expected time.Duration
	}{
		{"6:00:00", 6 * time.Hour},
		{"13:30", 13*time.Hour + 30*time.Minute},
		{"00:00:10", 10 * time.Second},
	}

	for _, test := range tests {
		got, err := ParseClock(test.clock)
		if err != nil {
			t.Errorf("ParseClock(%s) failed: %v", test.clock, err)
			continue
		}
		if got != test.expected {
			t.Errorf("Expected %s for %s, got %s", test.expected, test.clock, got)
		}
	}

	if _, err := ParseClock("noon"); !errors.Is(err, types.ErrConfiguration) {
		t.Errorf("Expected configuration error, got %v", err)
	}
}
