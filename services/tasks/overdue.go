package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeOverdueCheck = "rental:overdue"

// OverduePayload identifies the rental a scheduled overdue check targets.
type OverduePayload struct {
	RentalID string `json:"rentalId"`
}

// NewOverdueTask builds a task that fires at checkAt, the point where an
// open rental becomes overdue. The worker skips it if the rental has been
// returned by then.
func NewOverdueTask(rentalID string, checkAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(OverduePayload{RentalID: rentalID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeOverdueCheck, b)
	opts := []asynq.Option{asynq.ProcessAt(checkAt)}

	return task, opts, nil
}
