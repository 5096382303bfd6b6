// internal/domain/homework/status.go
package homework

import "fmt"

// Status is the review state reported by the Practicum API for a homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known status to the text shown to the user.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human-readable text for a status and whether the status is known.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Homework is a single submission's review status at a point in time.
type Homework struct {
	Name   string
	Status Status
}

// Message formats the status-change notification for the homework.
// The status must be known; use Verdict to check it first.
func (h Homework) Message() string {
	verdict, _ := Verdict(h.Status)
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", h.Name, verdict)
}
