package history

import "github.com/JaimeStill/route-finder/pkg/repository"

func scanSearch(s repository.Scanner) (Search, error) {
	var r Search
	err := s.Scan(&r.ID, &r.Source, &r.Destination, &r.Mode, &r.RouteCount, &r.CreatedAt)
	return r, err
}
