package ckks

import (
	"fmt"

	"github.com/tuneinsight/ckkscore/ring"
)

// checkNewLevel enforces the level-management preconditions common to
// ModSwitch and ModEmbed: moving toward exhaustion (newLevel > c.Level)
// and never past L.
func (ev *Evaluator) checkNewLevel(c *Ciphertext, newLevel int) {
	if newLevel <= c.Level {
		panic(fmt.Errorf("ckks: newLevel %d must exceed current level %d", newLevel, c.Level))
	}
	if newLevel > ev.params.L() {
		panic(fmt.Errorf("ckks: level %d exceeds modulus chain length L=%d (exhausted)", newLevel, ev.params.L()))
	}
}

// ModSwitch rescales c to newLevel by dividing every coefficient by
// Delta^(newLevel-c.Level), rounding to the nearest integer.
func (ev *Evaluator) ModSwitch(c *Ciphertext, newLevel int) *Ciphertext {
	ev.checkNewLevel(c, newLevel)
	bits := ev.params.LogScale() * (newLevel - c.Level)
	newQ := ev.params.QAt(newLevel)

	ax := ring.RightShift(ring.NewPoly(ev.params.N()), c.Ax, bits)
	bx := ring.RightShift(ring.NewPoly(ev.params.N()), c.Bx, bits)
	ax.Reduce(newQ)
	bx.Reduce(newQ)

	return NewCiphertext(ax, bx, c.Slots, newLevel)
}

// ModSwitchAssign rescales c in place to newLevel.
func (ev *Evaluator) ModSwitchAssign(c *Ciphertext, newLevel int) {
	result := ev.ModSwitch(c, newLevel)
	c.Ax, c.Bx, c.Level = result.Ax, result.Bx, result.Level
}

// ModSwitchOne rescales c by exactly one level, the standard rescaling
// step after a multiplication.
func (ev *Evaluator) ModSwitchOne(c *Ciphertext) *Ciphertext {
	return ev.ModSwitch(c, c.Level+1)
}

// ModSwitchOneAssign rescales c in place by exactly one level.
func (ev *Evaluator) ModSwitchOneAssign(c *Ciphertext) {
	ev.ModSwitchAssign(c, c.Level+1)
}

// ModEmbed centre-reduces c's coefficients into the representative range
// of q_newLevel without dividing by Delta. Used to embed a ciphertext into
// a smaller-modulus context without shrinking its scale.
func (ev *Evaluator) ModEmbed(c *Ciphertext, newLevel int) *Ciphertext {
	ev.checkNewLevel(c, newLevel)
	logQNew := ev.params.LogQ() - ev.params.LogScale()*(newLevel-1)

	ax := ring.Truncate(ring.NewPoly(ev.params.N()), c.Ax, logQNew)
	bx := ring.Truncate(ring.NewPoly(ev.params.N()), c.Bx, logQNew)

	return NewCiphertext(ax, bx, c.Slots, newLevel)
}

// ModEmbedAssign centre-reduces c in place into q_newLevel.
func (ev *Evaluator) ModEmbedAssign(c *Ciphertext, newLevel int) {
	result := ev.ModEmbed(c, newLevel)
	c.Ax, c.Bx, c.Level = result.Ax, result.Bx, result.Level
}
