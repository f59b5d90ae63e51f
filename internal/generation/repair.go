package generation

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/phrazzld/quizgen-api/internal/domain"
)

// NewResponseStamp returns a fresh per-response stamp: a ULID, which encodes
// the generation time in milliseconds followed by random entropy.
func NewResponseStamp() string {
	return ulid.Make().String()
}

// RepairIDs assigns an id to every question whose id is empty or repeats an
// earlier question's id. Assigned ids have the form q_<stamp>_<position>,
// with a numeric suffix added while that id is already used elsewhere in the
// quiz. Present unique ids are never changed, which makes the repair
// idempotent. Answer content is never touched.
func RepairIDs(quiz *domain.QuizQuestions, stamp string) {
	if quiz == nil {
		return
	}

	taken := make(map[string]struct{}, len(quiz.Questions))
	for _, q := range quiz.Questions {
		if q.ID != "" {
			taken[q.ID] = struct{}{}
		}
	}

	claimed := make(map[string]struct{}, len(quiz.Questions))
	for i := range quiz.Questions {
		id := quiz.Questions[i].ID
		if _, dup := claimed[id]; id == "" || dup {
			id = unusedID(taken, stamp, i)
			quiz.Questions[i].ID = id
			taken[id] = struct{}{}
		}
		claimed[id] = struct{}{}
	}
}

func unusedID(taken map[string]struct{}, stamp string, position int) string {
	id := fmt.Sprintf("q_%s_%d", stamp, position)
	for n := 1; ; n++ {
		if _, used := taken[id]; !used {
			return id
		}
		id = fmt.Sprintf("q_%s_%d_%d", stamp, position, n)
	}
}
