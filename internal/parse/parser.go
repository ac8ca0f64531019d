package parse

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"almanac"
)

// Input is the parsed puzzle: the literal seed identifiers plus the category
// graph. How the seeds become an initial range set is up to the caller (see
// SingleRanges and PairRanges).
type Input struct {
	Seeds []int64
	Graph *almanac.Graph
}

// puzzleFile is the participle grammar for the almanac text format.
type puzzleFile struct {
	Seeds    []int64      `parser:"'seeds' ':' @Int+"`
	Sections []mapSection `parser:"@@*"`
}

type mapSection struct {
	Source string     `parser:"@Ident '-' 'to' '-'"`
	Target string     `parser:"@Ident 'map' ':'"`
	Rows   []rangeRow `parser:"@@*"`
}

// rangeRow is one "dst src len" triple.
type rangeRow struct {
	DstStart int64 `parser:"@Int"`
	SrcStart int64 `parser:"@Int"`
	Length   int64 `parser:"@Int"`
}

var puzzleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Punct", Pattern: `[-:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var puzzleParser = participle.MustBuild[puzzleFile](
	participle.Lexer(puzzleLexer),
	participle.Elide("Whitespace"),
)

// LoadFile reads and parses a puzzle input file.
func LoadFile(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle input %s: %w", path, err)
	}

	in, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Parse parses puzzle text into an Input.
func Parse(data []byte) (*Input, error) {
	parsed, err := puzzleParser.ParseString("", string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse puzzle input: %w", err)
	}

	maps := make([]almanac.CategoryMap, 0, len(parsed.Sections))

	for _, section := range parsed.Sections {
		m, err := section.build()
		if err != nil {
			return nil, err
		}

		maps = append(maps, m)
	}

	graph, err := almanac.NewGraph(maps...)
	if err != nil {
		return nil, err
	}

	return &Input{Seeds: parsed.Seeds, Graph: graph}, nil
}

func (s mapSection) build() (almanac.CategoryMap, error) {
	source, err := almanac.ParseCategory(s.Source)
	if err != nil {
		return almanac.CategoryMap{}, fmt.Errorf("map header %s-to-%s: %w", s.Source, s.Target, err)
	}

	target, err := almanac.ParseCategory(s.Target)
	if err != nil {
		return almanac.CategoryMap{}, fmt.Errorf("map header %s-to-%s: %w", s.Source, s.Target, err)
	}

	ranges := make([]almanac.Interval, len(s.Rows))
	for i, row := range s.Rows {
		ranges[i] = almanac.NewInterval(row.SrcStart, row.Length, row.DstStart-row.SrcStart)
	}

	return almanac.NewCategoryMap(source, target, ranges)
}

// SingleRanges builds the initial range set treating every seed as a single
// identifier.
func (in *Input) SingleRanges() []almanac.IdRange {
	return almanac.SingleRanges(almanac.CategorySeed, in.Seeds)
}

// PairRanges builds the initial range set treating the seeds as (start,
// length) pairs.
func (in *Input) PairRanges() ([]almanac.IdRange, error) {
	return almanac.PairRanges(almanac.CategorySeed, in.Seeds)
}
