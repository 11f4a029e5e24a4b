package repo

type InMemoryMetricsRepository struct {
	users     *InMemoryUserRepository
	bulletins *InMemoryBulletinRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (r *InMemoryMetricsRepository) SetRepositories(users *InMemoryUserRepository, bulletins *InMemoryBulletinRepository) {
	r.users = users
	r.bulletins = bulletins
}

func (r *InMemoryMetricsRepository) GetOverview() (Overview, error) {
	o := Overview{
		TotalUsers:     r.users.Count(),
		TotalBulletins: r.bulletins.Count(),
	}

	perOwner := make(map[int]int)
	for _, b := range r.bulletins.bulletins {
		perOwner[b.UserID]++
	}
	for userID, count := range perOwner {
		if count > o.BusiestAuthor.BulletinCount {
			u, err := r.users.GetByID(userID)
			if err != nil {
				continue
			}
			o.BusiestAuthor = BusiestAuthor{Username: u.Username, BulletinCount: count}
		}
	}

	return o, nil
}
