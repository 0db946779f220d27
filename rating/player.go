package rating

import "fmt"

// Player holds the current Gaussian skill belief for one competitor.
// Mu is the mean estimate and Sigma the standard deviation of the belief;
// Sigma stays strictly positive through every update.
//
// Players are mutated in place by Rate and carry no internal locking:
// calls that touch the same player must be serialized by the caller.
type Player struct {
	Name  string
	Mu    float64
	Sigma float64
}

// Conservative returns mu - 3*sigma, the usual pessimistic estimate used
// for leaderboard ordering.
func (p *Player) Conservative() float64 {
	return p.Mu - 3.0*p.Sigma
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(name=%s, mu=%.3f, sigma=%.3f)", p.Name, p.Mu, p.Sigma)
}
