package qreg

import (
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMeasuredIdempotence(t *testing.T) {
	Convey("Given a register with a superposed qubit", t, func() {
		register := NewRegister(nil)
		register.AddQubit()
		So(register.Apply(HadamardGate(0)), ShouldBeNil)

		Convey("When measuring it repeatedly", func() {
			first, err := register.Measure(0)
			So(err, ShouldBeNil)

			Convey("Then every later read returns the same bit untouched", func() {
				q0, _ := register.Qubit(0)
				draws := register.Metrics().RandomDraws

				for i := 0; i < 5; i++ {
					bit, err := register.Measure(0)
					So(err, ShouldBeNil)
					So(bit, ShouldEqual, first)
				}

				q1, _ := register.Qubit(0)
				So(q1, ShouldResemble, q0)
				So(register.Metrics().RandomDraws, ShouldEqual, draws)
			})
		})
	})
}

func TestBindReopensMeasuredQubit(t *testing.T) {
	Convey("Given a register whose second qubit is already measured", t, func() {
		cfg := NewConfig()
		cfg.Seed = 2
		register := NewRegister(cfg)
		register.AddQubit()
		register.AddQubit()
		So(register.Apply(FlipGate(1)), ShouldBeNil)
		latched, err := register.Measure(1)
		So(err, ShouldBeNil)
		So(latched, ShouldEqual, 1)

		Convey("When binding it into a bell pair", func() {
			So(register.CreateBellPair(0, 1), ShouldBeNil)

			Convey("Then the latch is gone and the qubit is grouped again", func() {
				c1, _ := register.Classification(1)
				So(c1, ShouldEqual, Entangled)
			})

			Convey("Then measuring either member collapses the group freshly", func() {
				first, err := register.Measure(0)
				So(err, ShouldBeNil)
				second, err := register.Measure(1)
				So(err, ShouldBeNil)
				So(first+second, ShouldEqual, 1)
				So(register.Groups(), ShouldBeEmpty)
			})

			Convey("Then measuring the rebound qubit first is a real collapse", func() {
				bit, err := register.Measure(1)
				So(err, ShouldBeNil)
				So(register.Groups(), ShouldBeEmpty)

				Convey("And its new outcome stays latched from then on", func() {
					again, err := register.Measure(1)
					So(err, ShouldBeNil)
					So(again, ShouldEqual, bit)
				})
			})
		})
	})
}

func TestSeededDeterminism(t *testing.T) {
	Convey("Given two registers built from the same seed", t, func() {
		build := func() *Register {
			cfg := NewConfig()
			cfg.Seed = 99
			register := NewRegister(cfg)
			for i := 0; i < 8; i++ {
				register.AddQubit()
				So(register.Apply(HadamardGate(i)), ShouldBeNil)
			}
			return register
		}
		first, second := build(), build()

		Convey("When measuring both in full", func() {
			Convey("Then the sequences are identical", func() {
				So(first.MeasureAll(), ShouldResemble, second.MeasureAll())
			})
		})
	})
}

func TestBellPairStatistics(t *testing.T) {
	Convey("Given one seeded source shared across trials", t, func() {
		src := rand.NewPCG(42, 42)
		cfg := NewConfig()

		Convey("When running 2000 independent bell trials", func() {
			const shots = 2000
			ones := 0
			for shot := 0; shot < shots; shot++ {
				register := NewRegisterWithSource(cfg, src)
				register.AddQubit()
				register.AddQubit()
				if err := register.CreateBellPair(0, 1); err != nil {
					t.Fatalf("bell pair: %v", err)
				}
				bit, err := register.Measure(0)
				if err != nil {
					t.Fatalf("measure: %v", err)
				}
				ones += bit
			}

			Convey("Then the empirical P(1) is close to one half", func() {
				So(float64(ones)/shots, ShouldBeBetween, 0.45, 0.55)
			})
		})
	})
}

func TestBellPairCorrelation(t *testing.T) {
	Convey("Given one seeded source shared across trials", t, func() {
		src := rand.NewPCG(1234, 1234)
		cfg := NewConfig()

		Convey("When measuring both halves of many bell pairs", func() {
			complementary := true
			for shot := 0; shot < 500; shot++ {
				register := NewRegisterWithSource(cfg, src)
				register.AddQubit()
				register.AddQubit()
				if err := register.CreateBellPair(0, 1); err != nil {
					t.Fatalf("bell pair: %v", err)
				}
				first, _ := register.Measure(0)
				second, _ := register.Measure(1)
				if first+second != 1 {
					complementary = false
					break
				}
			}

			Convey("Then the two outcomes are always complementary", func() {
				So(complementary, ShouldBeTrue)
			})
		})
	})
}

func TestGroupCollapse(t *testing.T) {
	Convey("Given four qubits merged into one group", t, func() {
		register := NewRegister(nil)
		for i := 0; i < 4; i++ {
			register.AddQubit()
		}
		So(register.CreateBellPair(0, 1), ShouldBeNil)
		So(register.CreateBellPair(2, 3), ShouldBeNil)
		So(register.CreateBellPair(1, 2), ShouldBeNil)
		So(register.Groups(), ShouldResemble, [][]int{{0, 1, 2, 3}})

		Convey("When measuring any one member", func() {
			bit, err := register.Measure(2)
			So(err, ShouldBeNil)

			Convey("Then the whole group collapses with alternating parity", func() {
				bits := register.MeasureAll()
				So(bits[0], ShouldEqual, bits[2])
				So(bits[1], ShouldEqual, bits[3])
				So(bits[0], ShouldEqual, 1-bits[1])
				So(bits[2], ShouldEqual, bit)
			})

			Convey("Then the group is dissolved and members read classical", func() {
				So(register.Groups(), ShouldBeEmpty)
				for i := 0; i < 4; i++ {
					c, _ := register.Classification(i)
					So(c, ShouldBeIn, []Classification{Zero, One})
				}
			})

			Convey("Then only one random draw was consumed for the group", func() {
				So(register.Metrics().RandomDraws, ShouldEqual, 1)
				So(register.Metrics().GroupCollapses, ShouldEqual, 1)
			})
		})
	})
}

func TestMeasureAllMemoization(t *testing.T) {
	Convey("Given a register mixing grouped and free qubits", t, func() {
		register := NewRegister(nil)
		for i := 0; i < 3; i++ {
			register.AddQubit()
		}
		So(register.CreateBellPair(0, 2), ShouldBeNil)

		Convey("When measuring everything in one pass", func() {
			bits := register.MeasureAll()

			Convey("Then grouped outcomes come from one shared collapse", func() {
				So(len(bits), ShouldEqual, 3)
				So(bits[0], ShouldEqual, 1-bits[2])
				So(register.Metrics().GroupCollapses, ShouldEqual, 1)
			})

			Convey("Then a second pass replays the same bits", func() {
				So(register.MeasureAll(), ShouldResemble, bits)
			})
		})
	})
}

func TestToBinaryString(t *testing.T) {
	Convey("Given a register with classical contents", t, func() {
		register := NewRegister(nil)
		for i := 0; i < 4; i++ {
			register.AddQubit()
		}
		So(register.Apply(FlipGate(1)), ShouldBeNil)
		So(register.Apply(FlipGate(3)), ShouldBeNil)

		Convey("When dumping to a binary string", func() {
			So(register.ToBinaryString(), ShouldEqual, "0101")
		})
	})
}
