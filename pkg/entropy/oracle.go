package entropy

import (
	"math"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// Estimate is the oracle's view of a password: a coarse 0-4 score, the
// estimated number of attacker guesses, and optional human-readable feedback.
type Estimate struct {
	Score       int
	Guesses     float64
	Warning     string
	Suggestions []string
}

// Oracle estimates how hard a password is to guess. The scoring algorithm is
// a black box to callers.
type Oracle interface {
	Estimate(password string) Estimate
}

type zxcvbnOracle struct{}

// NewOracle returns the zxcvbn-backed oracle.
func NewOracle() Oracle {
	return zxcvbnOracle{}
}

func (zxcvbnOracle) Estimate(password string) Estimate {
	if password == "" {
		return Estimate{}
	}

	result := zxcvbn.PasswordStrength(password, nil)

	est := Estimate{
		Score:   result.Score,
		Guesses: math.Exp2(result.Entropy),
	}
	est.Warning, est.Suggestions = feedback(result.Score)

	return est
}

// feedback supplies the advice channel the Go zxcvbn port does not carry.
func feedback(score int) (string, []string) {
	switch {
	case score <= 1:
		return "This password would be cracked almost instantly.",
			[]string{"Consider a 3-4 word passphrase for much stronger security."}
	case score == 2:
		return "Short or low variety.",
			[]string{"Add more length and a mix of letters, numbers, and symbols."}
	case score == 3:
		return "", []string{"Consider a 3-4 word passphrase for even stronger security."}
	default:
		return "", nil
	}
}
