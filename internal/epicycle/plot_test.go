package epicycle_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spinners/internal/epicycle"
)

const tolerance = 1e-9

type recordingSurface struct {
	origins, tips []epicycle.Point
	points        []epicycle.Point
}

func (s *recordingSurface) Arrows(origins, tips []epicycle.Point) {
	s.origins, s.tips = origins, tips
}

func (s *recordingSurface) Points(pts []epicycle.Point) {
	s.points = append([]epicycle.Point(nil), pts...)
}

type fakeUI struct {
	delta   float64
	reset   bool
	edits   map[string]float64
	calls   []string
	plotIDs []string
	surface recordingSurface
}

func (u *fakeUI) FrameDelta() float64 { return u.delta }

func (u *fakeUI) Button(label string) bool {
	u.calls = append(u.calls, "button:"+label)
	return u.reset
}

func (u *fakeUI) DragFloat(d epicycle.DragFloat, value float64) float64 {
	u.calls = append(u.calls, "drag:"+d.Prefix)
	if v, ok := u.edits[d.Prefix]; ok {
		return d.Apply(v)
	}
	return value
}

func (u *fakeUI) Plot(id string) epicycle.Surface {
	u.calls = append(u.calls, "plot")
	u.plotIDs = append(u.plotIDs, id)
	return &u.surface
}

var _ = Describe("Tip", func() {
	It("keeps both orbits on unit circles", func() {
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			t := (r.Float64() - 0.5) * 1000
			ratio := (r.Float64() - 0.5) * 20
			if ratio == 0 {
				continue
			}
			p1, p2 := epicycle.Tip(t, ratio)
			Expect(p1.Norm()).To(BeNumerically("~", 1, tolerance))
			Expect(p2.Dist(p1)).To(BeNumerically("~", 1, tolerance))
		}
	})

	It("starts with both tips on the positive x axis", func() {
		p1, p2 := epicycle.Tip(0, math.Pi)
		Expect(p1).To(Equal(epicycle.Point{X: 1, Y: 0}))
		Expect(p2).To(Equal(epicycle.Point{X: 2, Y: 0}))
	})
})

var _ = Describe("Plot", func() {
	var p *epicycle.Plot

	BeforeEach(func() {
		p = epicycle.New(math.Pi)
	})

	Describe("New", func() {
		It("starts at rest with an empty trace", func() {
			Expect(p.Time()).To(BeZero())
			Expect(p.TimeScale()).To(Equal(epicycle.DefaultTimeScale))
			Expect(p.Trace()).To(BeEmpty())
			Expect(p.FrequencyRatio()).To(Equal(math.Pi))
		})
	})

	Describe("Reset", func() {
		It("is idempotent on a fresh plot", func() {
			p.Reset()
			Expect(p.Time()).To(BeZero())
			Expect(p.Trace()).To(BeEmpty())
		})

		It("clears history after updates", func() {
			for i := 0; i < 10; i++ {
				p.Step(1.0 / 60)
			}
			Expect(p.Trace()).NotTo(BeEmpty())
			Expect(p.Time()).To(BeNumerically(">", 0))

			p.Reset()
			Expect(p.Trace()).To(BeEmpty())
			Expect(p.Time()).To(BeZero())
		})

		It("keeps the trace capacity", func() {
			for i := 0; i < 100; i++ {
				p.Step(1.0 / 60)
			}
			before := cap(p.Trace())
			p.Reset()
			Expect(cap(p.Trace())).To(Equal(before))
		})
	})

	Describe("SetFrequencyRatio", func() {
		BeforeEach(func() {
			for i := 0; i < 5; i++ {
				p.Step(1.0 / 60)
			}
		})

		It("resets when the value changes", func() {
			Expect(p.SetFrequencyRatio(2.5)).To(BeTrue())
			Expect(p.Trace()).To(BeEmpty())
			Expect(p.Time()).To(BeZero())
			Expect(p.FrequencyRatio()).To(Equal(2.5))
		})

		It("leaves history alone when the value is unchanged", func() {
			n := len(p.Trace())
			Expect(p.SetFrequencyRatio(math.Pi)).To(BeFalse())
			Expect(p.Trace()).To(HaveLen(n))
		})

		It("rejects a zero ratio", func() {
			Expect(p.SetFrequencyRatio(0)).To(BeFalse())
			Expect(p.FrequencyRatio()).To(Equal(math.Pi))
		})

		It("renames the plot surface", func() {
			id := p.ID()
			p.SetFrequencyRatio(3)
			Expect(p.ID()).NotTo(Equal(id))
			Expect(p.ID()).To(Equal("Plot3"))
		})
	})

	Describe("SetTimeScale", func() {
		DescribeTable("clamps into [0, 10]",
			func(in, want float64) {
				p.SetTimeScale(in)
				Expect(p.TimeScale()).To(Equal(want))
			},
			Entry("below range", -3.0, 0.0),
			Entry("in range", 2.5, 2.5),
			Entry("above range", 42.0, 10.0),
		)
	})

	Describe("Step", func() {
		It("never moves the clock backwards", func() {
			r := rand.New(rand.NewSource(1))
			for _, ratio := range []float64{math.Pi, math.Phi, -2, 0.25} {
				q := epicycle.New(ratio)
				prev := q.Time()
				for i := 0; i < 200; i++ {
					q.SetTimeScale(r.Float64() * 10)
					q.Step(r.Float64() * 0.05)
					Expect(q.Time()).To(BeNumerically(">=", prev))
					prev = q.Time()
				}
			}
		})

		It("clamps large frame deltas to 1/120 s", func() {
			a, b := epicycle.New(5), epicycle.New(5)
			a.Step(10)
			b.Step(1.0 / 120)
			Expect(a.Time()).To(Equal(b.Time()))
			Expect(a.Time()).To(BeNumerically("~", 1.0/120, tolerance))
		})

		It("normalizes speed by 5/ratio", func() {
			q := epicycle.New(2.5)
			q.Step(1.0 / 120)
			Expect(q.Time()).To(BeNumerically("~", 2.0/120, tolerance))
		})

		DescribeTable("appends floor(20*scale)+2 points, or 1 when no sub-samples fit",
			func(scale float64, want int) {
				p.SetTimeScale(scale)
				p.Step(1.0 / 60)
				Expect(p.Trace()).To(HaveLen(want))
			},
			Entry("scale 1", 1.0, 22),
			Entry("scale 0.5", 0.5, 12),
			Entry("scale 2.75", 2.75, 57),
			Entry("scale 0.04", 0.04, 1),
			Entry("scale 0", 0.0, 1),
		)

		It("ends the trace at the exact current tip", func() {
			f := p.Step(1.0 / 60)
			_, want := epicycle.Tip(p.Time(), p.FrequencyRatio())
			trace := p.Trace()
			Expect(trace[len(trace)-1]).To(Equal(want))
			Expect(f.Secondary).To(Equal(want))
		})

		It("starts sub-samples at the previous time", func() {
			p.Step(1.0 / 60)
			last := p.Time()
			p.Step(1.0 / 60)
			_, want := epicycle.Tip(last, p.FrequencyRatio())
			Expect(p.Trace()[22]).To(Equal(want))
		})

		It("stands still at time scale 0", func() {
			p.SetTimeScale(0)
			for i := 0; i < 10; i++ {
				p.Step(1.0 / 60)
			}
			Expect(p.Time()).To(BeZero())
			Expect(p.Trace()).To(HaveLen(10))
			for _, pt := range p.Trace() {
				Expect(pt).To(Equal(p.Trace()[0]))
			}
		})

		It("ignores negative frame deltas", func() {
			p.Step(-1)
			Expect(p.Time()).To(BeZero())
		})
	})

	Describe("Show", func() {
		It("declares controls before the plot", func() {
			ui := &fakeUI{delta: 1.0 / 60}
			p.Show(ui)
			Expect(ui.calls).To(Equal([]string{
				"button:Reset",
				"drag:Num: ",
				"drag:Time scale: ",
				"plot",
			}))
			Expect(ui.plotIDs).To(ConsistOf(p.ID()))
		})

		It("draws both orbit radii and the full trace", func() {
			ui := &fakeUI{delta: 1.0 / 60}
			p.Show(ui)
			f := p.Frame()
			Expect(ui.surface.origins).To(Equal([]epicycle.Point{{}, f.Primary}))
			Expect(ui.surface.tips).To(Equal([]epicycle.Point{f.Primary, f.Secondary}))
			Expect(ui.surface.points).To(Equal(p.Trace()))
		})

		It("leaves only the current tip after a reset click", func() {
			p.Show(&fakeUI{delta: 1.0 / 60})
			p.Show(&fakeUI{delta: 1.0 / 60, reset: true})
			Expect(p.Time()).To(BeZero())
			Expect(p.Trace()).To(Equal([]epicycle.Point{{X: 2, Y: 0}}))
		})

		It("resets on a frequency edit before appending the next point", func() {
			p.Show(&fakeUI{delta: 1.0 / 60})
			p.Show(&fakeUI{delta: 1.0 / 60, edits: map[string]float64{"Num: ": 1.5}})
			Expect(p.FrequencyRatio()).To(Equal(1.5))
			Expect(p.Time()).To(BeZero())
			Expect(p.Trace()).To(HaveLen(1))
		})

		It("clamps time scale edits", func() {
			p.Show(&fakeUI{delta: 1.0 / 60, edits: map[string]float64{"Time scale: ": 25}})
			Expect(p.TimeScale()).To(Equal(epicycle.MaxTimeScale))
		})
	})
})
