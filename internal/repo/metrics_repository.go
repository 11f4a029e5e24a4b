package repo

type BusiestAuthor struct {
	Username      string `json:"username"`
	BulletinCount int    `json:"bulletin_count"`
}

// Overview aggregates board-wide counters for the stats endpoint.
type Overview struct {
	TotalUsers     int           `json:"total_users"`
	TotalBulletins int           `json:"total_bulletins"`
	BusiestAuthor  BusiestAuthor `json:"busiest_author"`
}

type MetricsRepository interface {
	GetOverview() (Overview, error)
}
