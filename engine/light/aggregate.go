package light

// MaxLights is the capacity of the light uniform arrays. Lights beyond it are ignored.
const MaxLights = 20

// Packed is the per-frame light data handed to the shading stage. Positions and
// Colours hold Count consecutive (x, y, z) / (r, g, b) triples; Strengths holds
// Count scalars. All three are empty, never nil-indexed, when Count is 0.
type Packed struct {
	Count     int
	Positions []float32
	Colours   []float32
	Strengths []float32
}

// Aggregate packs the first MaxLights active lights, in the order given, into flat
// uniform arrays. Nil and disabled entries are not active and take no slot. There is
// no relevance ordering: a scene with more than MaxLights active lights simply loses
// the ones at the end of the list.
//
// Parameters:
//   - lights: the scene's light snapshot for this frame
//
// Returns:
//   - Packed: the packed light data
func Aggregate(lights []Light) Packed {
	n := 0
	for _, l := range lights {
		if l != nil && l.Enabled() {
			n++
		}
	}
	n = min(n, MaxLights)

	p := Packed{
		Positions: make([]float32, 0, n*3),
		Colours:   make([]float32, 0, n*3),
		Strengths: make([]float32, 0, n),
	}
	for _, l := range lights {
		if p.Count == n {
			break
		}
		if l == nil || !l.Enabled() {
			continue
		}
		pos, col := l.Position(), l.Color()
		p.Positions = append(p.Positions, pos[:]...)
		p.Colours = append(p.Colours, col[:]...)
		p.Strengths = append(p.Strengths, l.Strength())
		p.Count++
	}
	return p
}
