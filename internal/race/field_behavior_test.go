package race_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/racesim/internal/race"
)

var _ = Describe("Field", func() {
	var (
		cars  *race.Cars
		field *race.Field
	)

	BeforeEach(func() {
		var err error
		cars, err = race.ParseCars("pobi,woni,jun")
		Expect(err).NotTo(HaveOccurred())
		field = race.NewField(cars, race.NewRandDraw(2024))
	})

	Describe("running rounds", func() {
		It("records exactly one snapshot per round with every car in registry order", func() {
			Expect(field.Run(7)).To(Succeed())

			rec := field.Results()
			Expect(rec.Len()).To(Equal(7))
			for i, r := range rec.Rounds() {
				Expect(r.Number).To(Equal(i + 1))
				Expect(r.Cars).To(HaveLen(3))
				Expect([]string{r.Cars[0].Name, r.Cars[1].Name, r.Cars[2].Name}).
					To(Equal([]string{"pobi", "woni", "jun"}))
			}
		})

		It("never moves a car backwards or by more than one per round", func() {
			Expect(field.Run(30)).To(Succeed())

			prev := map[string]int{}
			for _, r := range field.Results().Rounds() {
				for _, c := range r.Cars {
					Expect(c.Position).To(BeNumerically(">=", prev[c.Name]))
					Expect(c.Position - prev[c.Name]).To(BeNumerically("<=", 1))
					prev[c.Name] = c.Position
				}
			}
		})

		It("returns identical results on repeated reads", func() {
			Expect(field.Run(5)).To(Succeed())
			Expect(field.Results().Rounds()).To(Equal(field.Results().Rounds()))
		})

		It("records exactly one round for a single-round race", func() {
			Expect(field.Run(1)).To(Succeed())
			Expect(field.Results().Len()).To(Equal(1))
		})

		DescribeTable("rejects non-positive round counts",
			func(rounds int) {
				Expect(field.Run(rounds)).To(MatchError(race.ErrInvalidRoundCount))
				Expect(field.Results().Len()).To(BeZero())
			},
			Entry("zero", 0),
			Entry("negative", -1),
		)
	})

	Describe("determinism", func() {
		It("moves only the cars whose draw clears the threshold", func() {
			f := race.NewField(cars, race.NewSequenceDraw(4, 2, 5))
			Expect(f.Run(1)).To(Succeed())

			final, ok := f.Results().Final()
			Expect(ok).To(BeTrue())
			Expect(final.Cars).To(Equal([]race.CarState{
				{Name: "pobi", Position: 1},
				{Name: "woni", Position: 0},
				{Name: "jun", Position: 1},
			}))
		})

		It("reproduces the same record for the same seed", func() {
			other, err := race.ParseCars("pobi,woni,jun")
			Expect(err).NotTo(HaveOccurred())
			twin := race.NewField(other, race.NewRandDraw(2024))

			Expect(field.Run(10)).To(Succeed())
			Expect(twin.Run(10)).To(Succeed())
			Expect(twin.Results().Rounds()).To(Equal(field.Results().Rounds()))
			Expect(twin.Winners()).To(Equal(field.Winners()))
		})
	})

	Describe("winners", func() {
		It("includes every car tied at the maximum position in registry order", func() {
			abc, err := race.NewCars([]string{"A", "B", "C"})
			Expect(err).NotTo(HaveOccurred())
			f := race.NewField(abc, race.NewSequenceDraw(9, 0, 9, 9, 9, 9))
			Expect(f.Run(2)).To(Succeed())

			Expect(f.Winners()).To(Equal([]string{"A", "C"}))
			Expect(race.ResolveWinners(abc)).To(Equal([]string{"A", "C"}))
		})
	})
})

var _ = Describe("Cars", func() {
	DescribeTable("rejects invalid name lists",
		func(raw string, want error) {
			cars, err := race.ParseCars(raw)
			Expect(err).To(MatchError(want))
			Expect(cars).To(BeNil())
		},
		Entry("duplicate names", "pobi,woni,pobi", race.ErrDuplicateName),
		Entry("a single name", "pobi", race.ErrTooFewCars),
		Entry("reserved marker", "pobi,woni-", race.ErrInvalidName),
	)
})
