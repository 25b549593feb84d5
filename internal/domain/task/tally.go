package task

import "time"

// Counts はタスク集合の状態別集計。レポートに埋め込まれる。
type Counts struct {
	Total      int `json:"totalTasks" yaml:"totalTasks"`
	Pending    int `json:"pendingTasks" yaml:"pendingTasks"`
	InProgress int `json:"inProgressTasks" yaml:"inProgressTasks"`
	Completed  int `json:"completedTasks" yaml:"completedTasks"`
	Overdue    int `json:"overdueTasks" yaml:"overdueTasks"`
}

// Tally はタスク集合を 1 回の走査で集計する。
func Tally(tasks []*Task, today time.Time) Counts {
	var c Counts
	for _, t := range tasks {
		c.Total++
		switch t.Status {
		case StatusPending:
			c.Pending++
		case StatusInProgress:
			c.InProgress++
		case StatusCompleted:
			c.Completed++
		}
		if t.IsOverdue(today) {
			c.Overdue++
		}
	}
	return c
}
