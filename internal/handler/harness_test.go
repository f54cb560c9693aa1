package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"

	"citizen_registry/internal/handler"
	"citizen_registry/internal/model"
	"citizen_registry/internal/router"
	"citizen_registry/internal/service"
	"citizen_registry/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// payload is a free-form JSON request body
type payload = map[string]any

func intPtr(v int) *int { return &v }

// testEnv wires in-memory repositories through the real services, handlers
// and router so requests traverse the same middleware chains as production.
type testEnv struct {
	engine    *gin.Engine
	auth      service.AuthService
	countries service.CountryService
	states    service.StateService
	cities    service.CityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newMemUserRepo()
	countries := newMemCountryRepo()
	states := newMemStateRepo(countries)
	cities := newMemCityRepo(states)
	citizens := newMemCitizenRepo(cities)

	jwtUtil := utils.NewJWTUtil("test-secret", 24)

	authSvc := service.NewAuthService(users, jwtUtil)
	userSvc := service.NewUserService(users)
	countrySvc := service.NewCountryService(countries)
	stateSvc := service.NewStateService(states, countries)
	citySvc := service.NewCityService(cities, states)
	citizenSvc := service.NewCitizenService(citizens, cities)

	engine := router.New(router.Handlers{
		Users:     handler.NewUserHandler(authSvc, userSvc),
		Locations: handler.NewLocationHandler(countrySvc, stateSvc, citySvc),
		Citizens:  handler.NewCitizenHandler(citizenSvc),
	}, jwtUtil)

	return &testEnv{
		engine:    engine,
		auth:      authSvc,
		countries: countrySvc,
		states:    stateSvc,
		cities:    citySvc,
	}
}

// request performs an HTTP round trip through the engine. A non-empty token
// is sent as a bearer credential; a non-nil body is JSON-encoded.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// userToken registers a regular account and returns a valid bearer token.
func (e *testEnv) userToken(t *testing.T, email string) string {
	t.Helper()
	_, err := e.auth.Register(context.Background(), email, "testuser", "testpass123")
	require.NoError(t, err)
	token, err := e.auth.Login(context.Background(), email, "testpass123")
	require.NoError(t, err)
	return token
}

// adminToken bootstraps a staff/superuser account and returns its token.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	_, err := e.auth.RegisterAdmin(context.Background(), "admin@example.com", "admin", "adminpass123")
	require.NoError(t, err)
	token, err := e.auth.Login(context.Background(), "admin@example.com", "adminpass123")
	require.NoError(t, err)
	return token
}

// seedChain creates a country/state/city chain directly through the services
// and returns the city id.
func (e *testEnv) seedChain(t *testing.T) int64 {
	t.Helper()
	ctx := context.Background()

	country, err := e.countries.Create(ctx, model.CountryRequest{Name: "colombia", Code: intPtr(57)})
	require.NoError(t, err)
	state, err := e.states.Create(ctx, model.StateRequest{Name: "atlantico", Code: intPtr(2), Country: country.ID})
	require.NoError(t, err)
	city, err := e.cities.Create(ctx, model.CityRequest{Name: "barranquilla", Code: intPtr(2), State: state.ID})
	require.NoError(t, err)
	return city.ID
}

// --- in-memory repositories ---

type memUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*model.User{}, nextID: 1}
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	ids := sortedKeys(r.users)
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *r.users[id])
	}
	return users, nil
}

func (r *memUserRepo) Update(_ context.Context, user *model.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type memCountryRepo struct {
	countries map[int64]model.Country
	nextID    int64
}

func newMemCountryRepo() *memCountryRepo {
	return &memCountryRepo{countries: map[int64]model.Country{}, nextID: 1}
}

func (r *memCountryRepo) Create(_ context.Context, country *model.Country) error {
	country.ID = r.nextID
	r.nextID++
	r.countries[country.ID] = *country
	return nil
}

func (r *memCountryRepo) FindByID(_ context.Context, id int64) (*model.Country, error) {
	c, ok := r.countries[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCountryRepo) FindAll(_ context.Context) ([]model.Country, error) {
	out := make([]model.Country, 0, len(r.countries))
	for _, id := range sortedKeys(r.countries) {
		out = append(out, r.countries[id])
	}
	return out, nil
}

func (r *memCountryRepo) Update(_ context.Context, country *model.Country) error {
	r.countries[country.ID] = *country
	return nil
}

func (r *memCountryRepo) Delete(_ context.Context, id int64) error {
	delete(r.countries, id)
	return nil
}

type memStateRepo struct {
	countries *memCountryRepo
	states    map[int64]model.StateDetail
	nextID    int64
}

func newMemStateRepo(countries *memCountryRepo) *memStateRepo {
	return &memStateRepo{countries: countries, states: map[int64]model.StateDetail{}, nextID: 1}
}

func (r *memStateRepo) detail(state *model.State) model.StateDetail {
	d := model.StateDetail{ID: state.ID, Name: state.Name, Code: state.Code}
	if c, ok := r.countries.countries[state.CountryID]; ok {
		d.Country = c
	}
	return d
}

func (r *memStateRepo) Create(_ context.Context, state *model.State) error {
	state.ID = r.nextID
	r.nextID++
	r.states[state.ID] = r.detail(state)
	return nil
}

func (r *memStateRepo) FindByID(_ context.Context, id int64) (*model.StateDetail, error) {
	s, ok := r.states[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memStateRepo) FindAll(_ context.Context) ([]model.StateDetail, error) {
	out := make([]model.StateDetail, 0, len(r.states))
	for _, id := range sortedKeys(r.states) {
		out = append(out, r.states[id])
	}
	return out, nil
}

func (r *memStateRepo) Update(_ context.Context, state *model.State) error {
	r.states[state.ID] = r.detail(state)
	return nil
}

func (r *memStateRepo) Delete(_ context.Context, id int64) error {
	delete(r.states, id)
	return nil
}

type memCityRepo struct {
	states *memStateRepo
	cities map[int64]model.CityDetail
	nextID int64
}

func newMemCityRepo(states *memStateRepo) *memCityRepo {
	return &memCityRepo{states: states, cities: map[int64]model.CityDetail{}, nextID: 1}
}

func (r *memCityRepo) detail(city *model.City) model.CityDetail {
	d := model.CityDetail{ID: city.ID, Name: city.Name, Code: city.Code}
	if s, ok := r.states.states[city.StateID]; ok {
		d.State = s
	}
	return d
}

func (r *memCityRepo) Create(_ context.Context, city *model.City) error {
	city.ID = r.nextID
	r.nextID++
	r.cities[city.ID] = r.detail(city)
	return nil
}

func (r *memCityRepo) FindByID(_ context.Context, id int64) (*model.CityDetail, error) {
	c, ok := r.cities[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCityRepo) FindAll(_ context.Context) ([]model.CityDetail, error) {
	out := make([]model.CityDetail, 0, len(r.cities))
	for _, id := range sortedKeys(r.cities) {
		out = append(out, r.cities[id])
	}
	return out, nil
}

func (r *memCityRepo) Update(_ context.Context, city *model.City) error {
	r.cities[city.ID] = r.detail(city)
	return nil
}

func (r *memCityRepo) Delete(_ context.Context, id int64) error {
	delete(r.cities, id)
	return nil
}

type memCitizenRepo struct {
	cities   *memCityRepo
	citizens map[int64]model.Citizen
	nextID   int64
}

func newMemCitizenRepo(cities *memCityRepo) *memCitizenRepo {
	return &memCitizenRepo{cities: cities, citizens: map[int64]model.Citizen{}, nextID: 1}
}

func (r *memCitizenRepo) detail(cz model.Citizen) model.CitizenDetail {
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

func (r *memCitizenRepo) Create(_ context.Context, citizen *model.Citizen) error {
	citizen.ID = r.nextID
	r.nextID++
	r.citizens[citizen.ID] = *citizen
	return nil
}

func (r *memCitizenRepo) FindByID(_ context.Context, id int64) (*model.Citizen, error) {
	cz, ok := r.citizens[id]
	if !ok {
		return nil, nil
	}
	return &cz, nil
}

func (r *memCitizenRepo) FindDetail(_ context.Context, id int64) (*model.CitizenDetail, error) {
	cz, ok := r.citizens[id]
	if !ok {
		return nil, nil
	}
	d := r.detail(cz)
	return &d, nil
}

func (r *memCitizenRepo) FindByUser(_ context.Context, userID int64) ([]model.CitizenDetail, error) {
	var ids []int64
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

func (r *memCitizenRepo) Update(_ context.Context, citizen *model.Citizen) error {
	r.citizens[citizen.ID] = *citizen
	return nil
}

func (r *memCitizenRepo) Delete(_ context.Context, id int64) error {
	delete(r.citizens, id)
	return nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
