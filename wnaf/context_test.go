package wnaf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sclevine/spec"
)

func assertNoError(t *testing.T, err error, msgAndArgs ...any) {
	if err != nil {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sunexpected err: %s", message, err)
	}
}

func assertErrorIs(t *testing.T, err, target error, msgAndArgs ...any) {
	if !errors.Is(err, target) {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sactual: %v expected: %v", message, err, target)
	}
}

func assertEqual(t *testing.T, actual, expected any, msgAndArgs ...any) {
	if actual != expected {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sactual: %v expected: %v", message, actual, expected)
	}
}

func TestContext(t *testing.T) {
	spec.Run(t, "Context", func(t *testing.T, when spec.G, it spec.S) {
		when("constructed with a table", func() {
			it("rejects windows out of range", func() {
				for _, w := range []uint{0, 1, 9} {
					_, err := NewContext[modElement, modOps](w)
					assertErrorIs(t, err, ErrWindow, "w=", w)
				}
			})

			it("refuses to multiply before a base is set", func() {
				c, err := NewContext[modElement, modOps](4)
				assertNoError(t, err)

				var v modElement
				k := randomScalar(t)
				_, err = c.ScalarMult(&v, &k)
				assertErrorIs(t, err, ErrNoBase)
				assertEqual(t, c.MemoryBytes(), 0)
			})

			it("multiplies against the retained base", func() {
				c, err := NewContext[modElement, modOps](5)
				assertNoError(t, err)
				assertNoError(t, c.SetBase(&testBase))
				assertEqual(t, c.MemoryBytes(), (1<<3)*8)

				for _, k := range testScalars(t) {
					var v modElement
					_, err = c.ScalarMult(&v, &k)
					assertNoError(t, err)
					assertEqual(t, v, expectedMultiple(&k, testBase), "k=", &k)
				}
			})

			it("replaces the table when the base changes", func() {
				c, err := NewContext[modElement, modOps](4)
				assertNoError(t, err)
				assertNoError(t, c.SetBase(&testBase))

				base2 := modElement(42424242)
				assertNoError(t, c.SetBase(&base2))

				k := randomScalar(t)
				var v modElement
				_, err = c.ScalarMult(&v, &k)
				assertNoError(t, err)
				assertEqual(t, v, expectedMultiple(&k, base2))
			})
		})

		when("constructed without a table", func() {
			it("reports zero retained memory", func() {
				c := NewContextNoTable[modElement, modOps]()
				assertNoError(t, c.SetBase(&testBase))
				assertEqual(t, c.MemoryBytes(), 0)
			})

			it("matches the table path", func() {
				ladder := NewContextNoTable[modElement, modOps]()
				assertNoError(t, ladder.SetBase(&testBase))

				tabled, err := NewContext[modElement, modOps](6)
				assertNoError(t, err)
				assertNoError(t, tabled.SetBase(&testBase))

				for _, k := range testScalars(t) {
					var a, b modElement
					_, err = ladder.ScalarMult(&a, &k)
					assertNoError(t, err)
					_, err = tabled.ScalarMult(&b, &k)
					assertNoError(t, err)
					assertEqual(t, a, b, "k=", &k)
				}
			})
		})
	})
}
