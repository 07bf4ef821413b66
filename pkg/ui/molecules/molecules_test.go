package molecules

import (
	"testing"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/widgets"
)

func TestAliasesAreTheSameTypes(t *testing.T) {
	var s widgets.ScoreCard = ScoreCard{Title: "Sleep", Score: 80}
	if s.Status() != tokens.StatusGood {
		t.Errorf("Status = %s", s.Status())
	}
	var rows [][]Cell = [][]widgets.Cell{{Text("a"), Scored(40)}}
	if rows[0][1].Status != tokens.StatusConcern {
		t.Errorf("Scored(40) = %+v", rows[0][1])
	}
}

func TestConstantsForward(t *testing.T) {
	if NoData != widgets.NoData || DefaultChartHeight != widgets.DefaultChartHeight {
		t.Error("constants do not match pkg/widgets")
	}
}
