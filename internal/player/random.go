package player

import (
	"math/rand"
	"time"

	"github.com/citorva/connect-four/internal/domain"
)

// Random plays a uniformly random legal column. The rand source is injectable
// so tests can fix a seed and assert exact sequences.
type Random struct {
	name string
	rng  *rand.Rand
}

// NewRandom creates the bot. A nil rng gets a time-seeded source.
func NewRandom(name string, rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Random{name: name, rng: rng}
}

func (p *Random) Name() string {
	return p.name
}

func (p *Random) ChooseMove(view domain.View, _ domain.Token) (int, error) {
	columns := view.AvailableColumns()
	if len(columns) == 0 {
		return -1, domain.ErrNoLegalMove
	}
	return columns[p.rng.Intn(len(columns))], nil
}
