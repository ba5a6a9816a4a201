package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
)

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	depts  map[int64]*model.Department
	nextID int64
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{depts: make(map[int64]*model.Department), nextID: 100}
}

func (m *mockDeptRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.ID == 0 {
		m.nextID++
		dept.ID = m.nextID
	}
	m.depts[dept.ID] = dept
	return nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id int64) (*model.Department, error) {
	if d, ok := m.depts[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) List(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, id := range sortedKeys(m.depts) {
		result = append(result, *m.depts[id])
	}
	return result, nil
}

func (m *mockDeptRepo) ListNames(_ context.Context, excludeID int64) ([]string, error) {
	var names []string
	for _, id := range sortedKeys(m.depts) {
		if id != excludeID {
			names = append(names, m.depts[id].DepartmentName)
		}
	}
	return names, nil
}

func (m *mockDeptRepo) Update(_ context.Context, id int64, updates map[string]interface{}) (int64, error) {
	d, ok := m.depts[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["department_name"].(string); ok {
		d.DepartmentName = v
	}
	return 1, nil
}

func (m *mockDeptRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.depts[id]; !ok {
		return 0, nil
	}
	delete(m.depts, id)
	return 1, nil
}

// ── Mock VehicleTypeRepository ──

type mockVehicleTypeRepo struct {
	types map[int64]*model.VehicleType
}

func newMockVehicleTypeRepo() *mockVehicleTypeRepo {
	return &mockVehicleTypeRepo{types: make(map[int64]*model.VehicleType)}
}

func (m *mockVehicleTypeRepo) Create(_ context.Context, t *model.VehicleType) error {
	if t.ID == 0 {
		t.ID = int64(len(m.types) + 1)
	}
	m.types[t.ID] = t
	return nil
}

func (m *mockVehicleTypeRepo) GetByID(_ context.Context, id int64) (*model.VehicleType, error) {
	if t, ok := m.types[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVehicleTypeRepo) ListActive(_ context.Context) ([]model.VehicleType, error) {
	var result []model.VehicleType
	for _, id := range sortedKeys(m.types) {
		if t := m.types[id]; t.ModifyState == model.ModifyStateActive {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (m *mockVehicleTypeRepo) Update(_ context.Context, id int64, updates map[string]interface{}) (int64, error) {
	t, ok := m.types[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["modify_state"].(int); ok {
		t.ModifyState = v
	}
	return 1, nil
}

// ── Mock RegionRepository ──

type mockRegionRepo struct {
	regions map[int64]*model.Region
}

func newMockRegionRepo() *mockRegionRepo {
	return &mockRegionRepo{regions: make(map[int64]*model.Region)}
}

func (m *mockRegionRepo) Create(_ context.Context, r *model.Region) error {
	if r.ID == 0 {
		r.ID = int64(len(m.regions) + 1)
	}
	m.regions[r.ID] = r
	return nil
}

func (m *mockRegionRepo) GetByID(_ context.Context, id int64) (*model.Region, error) {
	if r, ok := m.regions[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegionRepo) List(_ context.Context) ([]model.Region, error) {
	var result []model.Region
	for _, id := range sortedKeys(m.regions) {
		result = append(result, *m.regions[id])
	}
	return result, nil
}

func (m *mockRegionRepo) Update(_ context.Context, id int64, _ map[string]interface{}) (int64, error) {
	if _, ok := m.regions[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (m *mockRegionRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.regions[id]; !ok {
		return 0, nil
	}
	delete(m.regions, id)
	return 1, nil
}

// ── Mock GarbageTypeRepository ──

type mockGarbageTypeRepo struct {
	types map[int64]*model.GarbageType
}

func newMockGarbageTypeRepo() *mockGarbageTypeRepo {
	return &mockGarbageTypeRepo{types: make(map[int64]*model.GarbageType)}
}

func (m *mockGarbageTypeRepo) Create(_ context.Context, g *model.GarbageType) error {
	if g.ID == 0 {
		g.ID = int64(len(m.types) + 1)
	}
	m.types[g.ID] = g
	return nil
}

func (m *mockGarbageTypeRepo) GetByID(_ context.Context, id int64) (*model.GarbageType, error) {
	if g, ok := m.types[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGarbageTypeRepo) FindByName(_ context.Context, name string) (*model.GarbageType, error) {
	for _, id := range sortedKeys(m.types) {
		if g := m.types[id]; g.GarbageTypeName == name && g.ModifyState == model.ModifyStateActive {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGarbageTypeRepo) ListActive(_ context.Context) ([]model.GarbageType, error) {
	var result []model.GarbageType
	for _, id := range sortedKeys(m.types) {
		if g := m.types[id]; g.ModifyState == model.ModifyStateActive {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *mockGarbageTypeRepo) Update(_ context.Context, id int64, updates map[string]interface{}) (int64, error) {
	g, ok := m.types[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["modify_state"].(int); ok {
		g.ModifyState = v
	}
	return 1, nil
}

// ── Mock GarbageSourceRepository ──

type mockGarbageSourceRepo struct {
	sources map[int64]*model.GarbageSource
	regions *mockRegionRepo
}

func newMockGarbageSourceRepo(regions *mockRegionRepo) *mockGarbageSourceRepo {
	return &mockGarbageSourceRepo{sources: make(map[int64]*model.GarbageSource), regions: regions}
}

func (m *mockGarbageSourceRepo) withRegion(g *model.GarbageSource) *model.GarbageSource {
	if g.RegionID != nil {
		g.Region = m.regions.regions[*g.RegionID]
	}
	return g
}

func (m *mockGarbageSourceRepo) Create(_ context.Context, g *model.GarbageSource) error {
	if g.ID == 0 {
		g.ID = int64(len(m.sources) + 1)
	}
	m.sources[g.ID] = g
	return nil
}

func (m *mockGarbageSourceRepo) GetByID(_ context.Context, id int64) (*model.GarbageSource, error) {
	if g, ok := m.sources[id]; ok {
		return m.withRegion(g), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGarbageSourceRepo) ListByName(_ context.Context, name string, limit int) ([]model.GarbageSource, error) {
	var result []model.GarbageSource
	for _, id := range sortedKeys(m.sources) {
		if g := m.sources[id]; g.SourceName == name && len(result) < limit {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *mockGarbageSourceRepo) List(_ context.Context) ([]model.GarbageSource, error) {
	var result []model.GarbageSource
	for _, id := range sortedKeys(m.sources) {
		result = append(result, *m.withRegion(m.sources[id]))
	}
	return result, nil
}

func (m *mockGarbageSourceRepo) Update(_ context.Context, id int64, _ map[string]interface{}) (int64, error) {
	if _, ok := m.sources[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (m *mockGarbageSourceRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.sources[id]; !ok {
		return 0, nil
	}
	delete(m.sources, id)
	return 1, nil
}

// ── Mock DriverRepository ──

type mockDriverRepo struct {
	drivers map[int64]*model.Driver
}

func newMockDriverRepo() *mockDriverRepo {
	return &mockDriverRepo{drivers: make(map[int64]*model.Driver)}
}

func (m *mockDriverRepo) Create(_ context.Context, d *model.Driver) error {
	if d.ID == 0 {
		d.ID = int64(len(m.drivers) + 1)
	}
	m.drivers[d.ID] = d
	return nil
}

func (m *mockDriverRepo) GetByID(_ context.Context, id int64) (*model.Driver, error) {
	if d, ok := m.drivers[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDriverRepo) FindByName(_ context.Context, name string) (*model.Driver, error) {
	for _, id := range sortedKeys(m.drivers) {
		if d := m.drivers[id]; d.DriverName == name {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDriverRepo) List(_ context.Context, f repository.DriverFilter, offset, limit int) ([]model.Driver, int64, error) {
	var all []model.Driver
	for _, id := range sortedKeys(m.drivers) {
		d := m.drivers[id]
		if f.DriverName != "" && d.DriverName != f.DriverName {
			continue
		}
		if f.DeptID != 0 && (d.DeptID == nil || *d.DeptID != f.DeptID) {
			continue
		}
		all = append(all, *d)
	}
	return pageOf(all, offset, limit), int64(len(all)), nil
}

func (m *mockDriverRepo) ListAll(ctx context.Context) ([]model.Driver, error) {
	all, _, err := m.List(ctx, repository.DriverFilter{}, 0, 0)
	return all, err
}

func (m *mockDriverRepo) Update(_ context.Context, id int64, _ map[string]interface{}) (int64, error) {
	if _, ok := m.drivers[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (m *mockDriverRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.drivers[id]; !ok {
		return 0, nil
	}
	delete(m.drivers, id)
	return 1, nil
}

// ── Mock VehicleRepository ──

// mockVehicleRepo GetByID 时按 id 从其他 mock 中补全关联，模拟预加载
type mockVehicleRepo struct {
	vehicles      map[int64]*model.Vehicle
	depts         *mockDeptRepo
	types         *mockVehicleTypeRepo
	sources       *mockGarbageSourceRepo
	garbageTypes  *mockGarbageTypeRepo
	cards         *mockCardRepo
	lastFilter    repository.VehicleFilter
	lastUpdates   map[string]interface{}
	listCallCount int
}

func (m *mockVehicleRepo) preload(v *model.Vehicle) *model.Vehicle {
	out := *v
	if v.DeptID != nil {
		out.Dept = m.depts.depts[*v.DeptID]
	}
	if v.VehicleTypeID != nil {
		out.VehicleType = m.types.types[*v.VehicleTypeID]
	}
	if v.GarbageSourceID != nil {
		out.GarbageSource = m.sources.sources[*v.GarbageSourceID]
	}
	if v.GarbageTypeID != nil {
		out.GarbageType = m.garbageTypes.types[*v.GarbageTypeID]
	}
	if v.CardID != nil && m.cards != nil {
		out.Card = m.cards.cards[*v.CardID]
	}
	return &out
}

func (m *mockVehicleRepo) Create(_ context.Context, v *model.Vehicle) error {
	if v.ID == 0 {
		v.ID = int64(len(m.vehicles) + 1)
	}
	m.vehicles[v.ID] = v
	return nil
}

func (m *mockVehicleRepo) GetByID(_ context.Context, id int64) (*model.Vehicle, error) {
	if v, ok := m.vehicles[id]; ok {
		return m.preload(v), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVehicleRepo) GetActiveByNo(_ context.Context, vehicleNo string) (*model.Vehicle, error) {
	for _, id := range sortedKeys(m.vehicles) {
		if v := m.vehicles[id]; v.VehicleNo == vehicleNo && v.ModifyState == model.ModifyStateActive {
			return m.preload(v), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVehicleRepo) match(v *model.Vehicle, f repository.VehicleFilter) bool {
	if v.ModifyState != f.ModifyState {
		return false
	}
	if f.VehicleNo != "" && !strings.Contains(v.VehicleNo, f.VehicleNo) {
		return false
	}
	if f.VehicleDoorNo != "" && !strings.Contains(v.VehicleDoorNo, f.VehicleDoorNo) {
		return false
	}
	if f.Driver != "" && v.Driver != f.Driver {
		return false
	}
	if f.DeptID != 0 && (v.DeptID == nil || *v.DeptID != f.DeptID) {
		return false
	}
	return f.VehicleTypeID == 0 || (v.VehicleTypeID != nil && *v.VehicleTypeID == f.VehicleTypeID)
}

func (m *mockVehicleRepo) List(_ context.Context, f repository.VehicleFilter, offset, limit int) ([]model.Vehicle, int64, error) {
	m.lastFilter = f
	m.listCallCount++
	var all []model.Vehicle
	for _, id := range sortedKeys(m.vehicles) {
		if v := m.vehicles[id]; m.match(v, f) {
			all = append(all, *m.preload(v))
		}
	}
	return pageOf(all, offset, limit), int64(len(all)), nil
}

func (m *mockVehicleRepo) ListByCardIDs(_ context.Context, cardIDs []int64, f repository.VehicleFilter) ([]model.Vehicle, error) {
	want := make(map[int64]bool, len(cardIDs))
	for _, id := range cardIDs {
		want[id] = true
	}
	var result []model.Vehicle
	for _, id := range sortedKeys(m.vehicles) {
		v := m.vehicles[id]
		if v.CardID != nil && want[*v.CardID] && m.match(v, f) {
			result = append(result, *m.preload(v))
		}
	}
	return result, nil
}

func (m *mockVehicleRepo) Update(_ context.Context, id int64, updates map[string]interface{}) (int64, error) {
	m.lastUpdates = updates
	v, ok := m.vehicles[id]
	if !ok {
		return 0, nil
	}
	if s, ok := updates["modify_state"].(int); ok {
		v.ModifyState = s
	}
	return 1, nil
}

func (m *mockVehicleRepo) UpdateActive(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	if v, ok := m.vehicles[id]; !ok || v.ModifyState != model.ModifyStateActive {
		m.lastUpdates = nil
		return 0, nil
	}
	return m.Update(ctx, id, updates)
}

// ── Mock PoundRepository ──

type mockPoundRepo struct {
	pounds map[int64]*model.Pound
}

func newMockPoundRepo() *mockPoundRepo {
	return &mockPoundRepo{pounds: make(map[int64]*model.Pound)}
}

func (m *mockPoundRepo) Create(_ context.Context, p *model.Pound) error {
	if p.ID == 0 {
		p.ID = int64(len(m.pounds) + 1)
	}
	m.pounds[p.ID] = p
	return nil
}

func (m *mockPoundRepo) List(_ context.Context, offset, limit int) ([]model.Pound, int64, error) {
	var all []model.Pound
	for _, id := range sortedKeys(m.pounds) {
		all = append(all, *m.pounds[id])
	}
	return pageOf(all, offset, limit), int64(len(all)), nil
}

func (m *mockPoundRepo) ListAll(ctx context.Context) ([]model.Pound, error) {
	all, _, err := m.List(ctx, 0, 0)
	return all, err
}

func (m *mockPoundRepo) Update(_ context.Context, id int64, _ map[string]interface{}) (int64, error) {
	if _, ok := m.pounds[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (m *mockPoundRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.pounds[id]; !ok {
		return 0, nil
	}
	delete(m.pounds, id)
	return 1, nil
}

// ── Mock CardRepository ──

type cardPoundKey struct {
	cardID, poundID int64
}

type mockCardRepo struct {
	cards   map[int64]*model.Card
	grants  map[cardPoundKey]*model.CardPound
	changes map[int64]*model.CardChanged // key: card_id
	pounds  *mockPoundRepo
}

func newMockCardRepo(pounds *mockPoundRepo) *mockCardRepo {
	return &mockCardRepo{
		cards:   make(map[int64]*model.Card),
		grants:  make(map[cardPoundKey]*model.CardPound),
		changes: make(map[int64]*model.CardChanged),
		pounds:  pounds,
	}
}

func (m *mockCardRepo) Create(_ context.Context, card *model.Card) error {
	if card.ID == 0 {
		card.ID = int64(len(m.cards) + 1)
	}
	m.cards[card.ID] = card
	return nil
}

func (m *mockCardRepo) GetByID(_ context.Context, id int64) (*model.Card, error) {
	if c, ok := m.cards[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCardRepo) List(_ context.Context, f repository.CardFilter, offset, limit int) ([]model.Card, int64, error) {
	var all []model.Card
	for _, id := range sortedKeys(m.cards) {
		if c := m.cards[id]; f.CardNo == "" || strings.Contains(c.CardNo, f.CardNo) {
			all = append(all, *c)
		}
	}
	return pageOf(all, offset, limit), int64(len(all)), nil
}

func (m *mockCardRepo) Update(_ context.Context, id int64, updates map[string]interface{}) (int64, error) {
	c, ok := m.cards[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["card_no"].(string); ok {
		c.CardNo = v
	}
	return 1, nil
}

func (m *mockCardRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.cards[id]; !ok {
		return 0, nil
	}
	delete(m.cards, id)
	for k := range m.grants {
		if k.cardID == id {
			delete(m.grants, k)
		}
	}
	return 1, nil
}

func (m *mockCardRepo) ListChanges(_ context.Context, _ repository.CardChangeFilter, offset, limit int) ([]model.CardChanged, int64, error) {
	var all []model.CardChanged
	for _, id := range sortedKeys(m.changes) {
		all = append(all, *m.changes[id])
	}
	return pageOf(all, offset, limit), int64(len(all)), nil
}

func (m *mockCardRepo) Change(_ context.Context, change repository.CardChange) error {
	if _, ok := m.cards[change.OldCardID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.changes[change.OldCardID] = change.Record
	return nil
}

func (m *mockCardRepo) ListCardPounds(_ context.Context, cardIDs []int64, poundID int64) ([]model.CardPound, error) {
	var result []model.CardPound
	for _, cardID := range cardIDs {
		for _, pid := range sortedKeys(m.pounds.pounds) {
			if poundID != 0 && pid != poundID {
				continue
			}
			if g, ok := m.grants[cardPoundKey{cardID, pid}]; ok {
				cp := *g
				cp.Pound = m.pounds.pounds[pid]
				result = append(result, cp)
			}
		}
	}
	return result, nil
}

func (m *mockCardRepo) Sign(_ context.Context, cardID, poundID int64, validity repository.CardValidity) error {
	c, ok := m.cards[cardID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.CardStartTime, c.CardExpireTime = validity.Start, validity.Expire
	key := cardPoundKey{cardID, poundID}
	if g, ok := m.grants[key]; ok {
		g.UploadState = model.UploadStateUploaded
		return nil
	}
	m.grants[key] = &model.CardPound{
		ID:          int64(len(m.grants) + 1),
		CardID:      cardID,
		PoundID:     poundID,
		UploadState: model.UploadStateUploaded,
	}
	return nil
}

func (m *mockCardRepo) Revoke(_ context.Context, cardID, poundID int64) (int64, error) {
	key := cardPoundKey{cardID, poundID}
	if _, ok := m.grants[key]; !ok {
		return 0, nil
	}
	delete(m.grants, key)
	return 1, nil
}

// ── Mock OperationLogRepository ──

type mockOperationLogRepo struct {
	logs       []model.OperationLog
	lastFilter repository.OperationLogFilter
}

func (m *mockOperationLogRepo) Create(_ context.Context, log *model.OperationLog) error {
	log.ID = int64(len(m.logs) + 1)
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockOperationLogRepo) List(_ context.Context, f repository.OperationLogFilter, offset, limit int) ([]model.OperationLog, int64, error) {
	m.lastFilter = f
	return pageOf(m.logs, offset, limit), int64(len(m.logs)), nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users []model.WebUser
}

func (m *mockUserRepo) FindWebUsers(_ context.Context, userID string, limit int) ([]model.WebUser, error) {
	var result []model.WebUser
	for _, u := range m.users {
		if u.UserID == userID && len(result) < limit {
			result = append(result, u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) CreateWebUser(_ context.Context, user *model.WebUser) error {
	user.ID = int64(len(m.users) + 1)
	m.users = append(m.users, *user)
	return nil
}

func (m *mockUserRepo) GetOperatorByUserID(_ context.Context, _ string) (*model.Operator, error) {
	return nil, gorm.ErrRecordNotFound
}

// ── Mock DictionaryRepository ──

type mockDictionaryRepo struct {
	values map[string][]string
}

func (m *mockDictionaryRepo) ListValues(_ context.Context, dataType string) ([]string, error) {
	return m.values[dataType], nil
}

// ── Mock WeightRecordRepository ──

// mockWeightRecordRepo 汇总结果由测试预置，同时记录最近一次查询条件
type mockWeightRecordRepo struct {
	records    map[int64]*model.WeightRecord
	groups     map[string][]repository.GroupRow // key: groupKeyString(By)
	sums       repository.WeightSums
	lastFilter repository.WeightFilter
	lastGroups []repository.GroupQuery
}

func newMockWeightRecordRepo() *mockWeightRecordRepo {
	return &mockWeightRecordRepo{
		records: make(map[int64]*model.WeightRecord),
		groups:  make(map[string][]repository.GroupRow),
	}
}

func groupKeyString(by []repository.GroupKey) string {
	var b strings.Builder
	for _, k := range by {
		b.WriteByte(byte('a' + int(k)))
	}
	return b.String()
}

func (m *mockWeightRecordRepo) Create(_ context.Context, w *model.WeightRecord) error {
	if w.ID == 0 {
		w.ID = int64(len(m.records) + 1)
	}
	m.records[w.ID] = w
	return nil
}

func (m *mockWeightRecordRepo) GetByID(_ context.Context, id int64) (*model.WeightRecord, error) {
	if w, ok := m.records[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWeightRecordRepo) List(_ context.Context, f repository.WeightFilter, offset, limit int) ([]model.WeightRecord, int64, error) {
	m.lastFilter = f
	var all []model.WeightRecord
	for _, id := range sortedKeys(m.records) {
		all = append(all, *m.records[id])
	}
	return pageOf(all, offset, limit), int64(len(all)), nil
}

func (m *mockWeightRecordRepo) Sums(_ context.Context, f repository.WeightFilter) (*repository.WeightSums, error) {
	m.lastFilter = f
	sums := m.sums
	return &sums, nil
}

func (m *mockWeightRecordRepo) Group(_ context.Context, q repository.GroupQuery) ([]repository.GroupRow, error) {
	m.lastFilter = q.Filter
	m.lastGroups = append(m.lastGroups, q)
	return m.groups[groupKeyString(q.By)], nil
}

// ── 测试辅助 ──

type mockRepos struct {
	dept         *mockDeptRepo
	vehicle      *mockVehicleRepo
	vehicleType  *mockVehicleTypeRepo
	region       *mockRegionRepo
	driver       *mockDriverRepo
	garbageType  *mockGarbageTypeRepo
	garbageSrc   *mockGarbageSourceRepo
	pound        *mockPoundRepo
	card         *mockCardRepo
	operationLog *mockOperationLogRepo
	weight       *mockWeightRecordRepo
	user         *mockUserRepo
	dictionary   *mockDictionaryRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		dept:         newMockDeptRepo(),
		vehicleType:  newMockVehicleTypeRepo(),
		region:       newMockRegionRepo(),
		driver:       newMockDriverRepo(),
		garbageType:  newMockGarbageTypeRepo(),
		pound:        newMockPoundRepo(),
		operationLog: &mockOperationLogRepo{},
		weight:       newMockWeightRecordRepo(),
		user:         &mockUserRepo{},
		dictionary:   &mockDictionaryRepo{values: make(map[string][]string)},
	}
	m.garbageSrc = newMockGarbageSourceRepo(m.region)
	m.card = newMockCardRepo(m.pound)
	m.vehicle = &mockVehicleRepo{
		vehicles:     make(map[int64]*model.Vehicle),
		depts:        m.dept,
		types:        m.vehicleType,
		sources:      m.garbageSrc,
		garbageTypes: m.garbageType,
		cards:        m.card,
	}

	repo := &repository.Repository{
		Department:    m.dept,
		Vehicle:       m.vehicle,
		VehicleType:   m.vehicleType,
		Region:        m.region,
		Driver:        m.driver,
		GarbageType:   m.garbageType,
		GarbageSource: m.garbageSrc,
		Pound:         m.pound,
		Card:          m.card,
		OperationLog:  m.operationLog,
		WeightRecord:  m.weight,
		User:          m.user,
		Dictionary:    m.dictionary,
	}
	return repo, m
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// pageOf limit <= 0 时不分页
func pageOf[T any](all []T, offset, limit int) []T {
	if limit <= 0 {
		return all
	}
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
