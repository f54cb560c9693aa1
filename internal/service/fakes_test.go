package service

import (
	"context"
	"sort"

	"citizen_registry/internal/model"
)

func intPtr(v int) *int { return &v }

// In-memory repository fakes. They keep only the behavior the services rely
// on: nil, nil for a missing row, assigned ids on insert.

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*model.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *r.users[id])
	}
	return users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeCountryRepo struct {
	countries map[int64]model.Country
	nextID    int64
}

func newFakeCountryRepo() *fakeCountryRepo {
	return &fakeCountryRepo{countries: map[int64]model.Country{}, nextID: 1}
}

func (r *fakeCountryRepo) Create(_ context.Context, country *model.Country) error {
	country.ID = r.nextID
	r.nextID++
	r.countries[country.ID] = *country
	return nil
}

func (r *fakeCountryRepo) FindByID(_ context.Context, id int64) (*model.Country, error) {
	c, ok := r.countries[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCountryRepo) FindAll(_ context.Context) ([]model.Country, error) {
	ids := make([]int64, 0, len(r.countries))
	for id := range r.countries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Country, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.countries[id])
	}
	return out, nil
}

func (r *fakeCountryRepo) Update(_ context.Context, country *model.Country) error {
	r.countries[country.ID] = *country
	return nil
}

func (r *fakeCountryRepo) Delete(_ context.Context, id int64) error {
	delete(r.countries, id)
	return nil
}

type fakeStateRepo struct {
	countries *fakeCountryRepo
	states    map[int64]model.StateDetail
	nextID    int64
}

func newFakeStateRepo(countries *fakeCountryRepo) *fakeStateRepo {
	return &fakeStateRepo{countries: countries, states: map[int64]model.StateDetail{}, nextID: 1}
}

func (r *fakeStateRepo) detail(state *model.State) model.StateDetail {
	d := model.StateDetail{ID: state.ID, Name: state.Name, Code: state.Code}
	if c, ok := r.countries.countries[state.CountryID]; ok {
		d.Country = c
	}
	return d
}

func (r *fakeStateRepo) Create(_ context.Context, state *model.State) error {
	state.ID = r.nextID
	r.nextID++
	r.states[state.ID] = r.detail(state)
	return nil
}

func (r *fakeStateRepo) FindByID(_ context.Context, id int64) (*model.StateDetail, error) {
	s, ok := r.states[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeStateRepo) FindAll(_ context.Context) ([]model.StateDetail, error) {
	ids := make([]int64, 0, len(r.states))
	for id := range r.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.StateDetail, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.states[id])
	}
	return out, nil
}

func (r *fakeStateRepo) Update(_ context.Context, state *model.State) error {
	r.states[state.ID] = r.detail(state)
	return nil
}

func (r *fakeStateRepo) Delete(_ context.Context, id int64) error {
	delete(r.states, id)
	return nil
}

type fakeCityRepo struct {
	states *fakeStateRepo
	cities map[int64]model.CityDetail
	nextID int64
}

func newFakeCityRepo(states *fakeStateRepo) *fakeCityRepo {
	return &fakeCityRepo{states: states, cities: map[int64]model.CityDetail{}, nextID: 1}
}

func (r *fakeCityRepo) detail(city *model.City) model.CityDetail {
	d := model.CityDetail{ID: city.ID, Name: city.Name, Code: city.Code}
	if s, ok := r.states.states[city.StateID]; ok {
		d.State = s
	}
	return d
}

func (r *fakeCityRepo) Create(_ context.Context, city *model.City) error {
	city.ID = r.nextID
	r.nextID++
	r.cities[city.ID] = r.detail(city)
	return nil
}

func (r *fakeCityRepo) FindByID(_ context.Context, id int64) (*model.CityDetail, error) {
	c, ok := r.cities[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCityRepo) FindAll(_ context.Context) ([]model.CityDetail, error) {
	ids := make([]int64, 0, len(r.cities))
	for id := range r.cities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.CityDetail, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.cities[id])
	}
	return out, nil
}

func (r *fakeCityRepo) Update(_ context.Context, city *model.City) error {
	r.cities[city.ID] = r.detail(city)
	return nil
}

func (r *fakeCityRepo) Delete(_ context.Context, id int64) error {
	delete(r.cities, id)
	return nil
}

type fakeCitizenRepo struct {
	cities   *fakeCityRepo
	citizens map[int64]model.Citizen
	nextID   int64
}

func newFakeCitizenRepo(cities *fakeCityRepo) *fakeCitizenRepo {
	return &fakeCitizenRepo{cities: cities, citizens: map[int64]model.Citizen{}, nextID: 1}
}

func (r *fakeCitizenRepo) detail(cz model.Citizen) model.CitizenDetail {
	d := model.CitizenDetail{
		ID:               cz.ID,
		Name:             cz.Name,
		LastName:         cz.LastName,
		Address:          cz.Address,
		Phone:            cz.Phone,
		NoIdentification: cz.NoIdentification,
		UserID:           cz.UserID,
	}
	if c, ok := r.cities.cities[cz.CityID]; ok {
		d.City = c
	}
	return d
}

func (r *fakeCitizenRepo) Create(_ context.Context, citizen *model.Citizen) error {
	citizen.ID = r.nextID
	r.nextID++
	r.citizens[citizen.ID] = *citizen
	return nil
}

func (r *fakeCitizenRepo) FindByID(_ context.Context, id int64) (*model.Citizen, error) {
	cz, ok := r.citizens[id]
	if !ok {
		return nil, nil
	}
	return &cz, nil
}

func (r *fakeCitizenRepo) FindDetail(_ context.Context, id int64) (*model.CitizenDetail, error) {
	cz, ok := r.citizens[id]
	if !ok {
		return nil, nil
	}
	d := r.detail(cz)
	return &d, nil
}

func (r *fakeCitizenRepo) FindByUser(_ context.Context, userID int64) ([]model.CitizenDetail, error) {
	ids := make([]int64, 0, len(r.citizens))
	for id, cz := range r.citizens {
		if cz.UserID == userID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.CitizenDetail, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.detail(r.citizens[id]))
	}
	return out, nil
}

func (r *fakeCitizenRepo) Update(_ context.Context, citizen *model.Citizen) error {
	r.citizens[citizen.ID] = *citizen
	return nil
}

func (r *fakeCitizenRepo) Delete(_ context.Context, id int64) error {
	delete(r.citizens, id)
	return nil
}
