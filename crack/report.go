package crack

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Result pairs a recovered model with its predicted continuation, when the
// caller asked for one.
type Result struct {
	Model  Model
	Future []uint64
}

// ToJSON renders results as an indented json array. Use orderedmap so the
// parameter fields keep a stable, readable order.
func ToJSON(results []Result) ([]byte, error) {
	report := make([]*orderedmap.OrderedMap[string, any], 0, len(results))
	for _, r := range results {
		om := orderedmap.New[string, any]()
		om.Set("model", r.Model.Kind())
		switch m := r.Model.(type) {
		case *LCGModel:
			om.Set("a", m.A)
			om.Set("c", m.C)
			om.Set("m", m.M)
			om.Set("trunc_mod", m.TruncMod)
			om.Set("last_state", m.LastState)
		case *AffineModel:
			om.Set("a", m.A)
			om.Set("b", m.B)
			om.Set("d", m.D)
			om.Set("last_output", m.LastOutput)
		}
		if r.Future != nil {
			om.Set("future", r.Future)
		}
		report = append(report, om)
	}

	b, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, b, "", "\t"); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}
