// Hand-written gomock mocks for the scheduler's consumer interfaces.
// MockPublisher and MockMetricsFetcher take a platform at construction
// so a single mock type can stand in for any registry entry, which is
// why these are not generated by mockgen.

package scheduler

import (
	context "context"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	primitive "go.mongodb.org/mongo-driver/bson/primitive"

	common "postpilot/internal/common"
	dbmongo "postpilot/internal/dbmongo"
)

// MockPostStore is a mock of PostStore interface.
type MockPostStore struct {
	ctrl     *gomock.Controller
	recorder *MockPostStoreMockRecorder
}

// MockPostStoreMockRecorder is the mock recorder for MockPostStore.
type MockPostStoreMockRecorder struct {
	mock *MockPostStore
}

// NewMockPostStore creates a new mock instance.
func NewMockPostStore(ctrl *gomock.Controller) *MockPostStore {
	mock := &MockPostStore{ctrl: ctrl}
	mock.recorder = &MockPostStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPostStore) EXPECT() *MockPostStoreMockRecorder {
	return m.recorder
}

// DuePosts mocks base method.
func (m *MockPostStore) DuePosts(ctx context.Context, now time.Time) ([]*dbmongo.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DuePosts", ctx, now)
	ret0, _ := ret[0].([]*dbmongo.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DuePosts indicates an expected call of DuePosts.
func (mr *MockPostStoreMockRecorder) DuePosts(ctx, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DuePosts", reflect.TypeOf((*MockPostStore)(nil).DuePosts), ctx, now)
}

// PostedWithExternalID mocks base method.
func (m *MockPostStore) PostedWithExternalID(ctx context.Context, platform common.Platform) ([]*dbmongo.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PostedWithExternalID", ctx, platform)
	ret0, _ := ret[0].([]*dbmongo.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PostedWithExternalID indicates an expected call of PostedWithExternalID.
func (mr *MockPostStoreMockRecorder) PostedWithExternalID(ctx, platform interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PostedWithExternalID", reflect.TypeOf((*MockPostStore)(nil).PostedWithExternalID), ctx, platform)
}

// SetExternalID mocks base method.
func (m *MockPostStore) SetExternalID(ctx context.Context, postID primitive.ObjectID, platform common.Platform, externalID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetExternalID", ctx, postID, platform, externalID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetExternalID indicates an expected call of SetExternalID.
func (mr *MockPostStoreMockRecorder) SetExternalID(ctx, postID, platform, externalID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetExternalID", reflect.TypeOf((*MockPostStore)(nil).SetExternalID), ctx, postID, platform, externalID)
}

// MarkPosted mocks base method.
func (m *MockPostStore) MarkPosted(ctx context.Context, postID primitive.ObjectID, platform common.Platform, mediaURLs []string, modifiedBy string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkPosted", ctx, postID, platform, mediaURLs, modifiedBy)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkPosted indicates an expected call of MarkPosted.
func (mr *MockPostStoreMockRecorder) MarkPosted(ctx, postID, platform, mediaURLs, modifiedBy interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkPosted", reflect.TypeOf((*MockPostStore)(nil).MarkPosted), ctx, postID, platform, mediaURLs, modifiedBy)
}

// MarkFailed mocks base method.
func (m *MockPostStore) MarkFailed(ctx context.Context, postID primitive.ObjectID, platform common.Platform, errText string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkFailed", ctx, postID, platform, errText)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkFailed indicates an expected call of MarkFailed.
func (mr *MockPostStoreMockRecorder) MarkFailed(ctx, postID, platform, errText interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkFailed", reflect.TypeOf((*MockPostStore)(nil).MarkFailed), ctx, postID, platform, errText)
}

// RecordError mocks base method.
func (m *MockPostStore) RecordError(ctx context.Context, postID primitive.ObjectID, platform common.Platform, errText string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordError", ctx, postID, platform, errText)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordError indicates an expected call of RecordError.
func (mr *MockPostStoreMockRecorder) RecordError(ctx, postID, platform, errText interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordError", reflect.TypeOf((*MockPostStore)(nil).RecordError), ctx, postID, platform, errText)
}

// MockAccountStore is a mock of AccountStore interface.
type MockAccountStore struct {
	ctrl     *gomock.Controller
	recorder *MockAccountStoreMockRecorder
}

// MockAccountStoreMockRecorder is the mock recorder for MockAccountStore.
type MockAccountStoreMockRecorder struct {
	mock *MockAccountStore
}

// NewMockAccountStore creates a new mock instance.
func NewMockAccountStore(ctrl *gomock.Controller) *MockAccountStore {
	mock := &MockAccountStore{ctrl: ctrl}
	mock.recorder = &MockAccountStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountStore) EXPECT() *MockAccountStoreMockRecorder {
	return m.recorder
}

// ByID mocks base method.
func (m *MockAccountStore) ByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.SocialAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ByID", ctx, id)
	ret0, _ := ret[0].(*dbmongo.SocialAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ByID indicates an expected call of ByID.
func (mr *MockAccountStoreMockRecorder) ByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ByID", reflect.TypeOf((*MockAccountStore)(nil).ByID), ctx, id)
}

// MockUserStore is a mock of UserStore interface.
type MockUserStore struct {
	ctrl     *gomock.Controller
	recorder *MockUserStoreMockRecorder
}

// MockUserStoreMockRecorder is the mock recorder for MockUserStore.
type MockUserStoreMockRecorder struct {
	mock *MockUserStore
}

// NewMockUserStore creates a new mock instance.
func NewMockUserStore(ctrl *gomock.Controller) *MockUserStore {
	mock := &MockUserStore{ctrl: ctrl}
	mock.recorder = &MockUserStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserStore) EXPECT() *MockUserStoreMockRecorder {
	return m.recorder
}

// UpdateProfileSnapshot mocks base method.
func (m *MockUserStore) UpdateProfileSnapshot(ctx context.Context, userID primitive.ObjectID, platform common.Platform, snap *dbmongo.ProfileSnapshot) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProfileSnapshot", ctx, userID, platform, snap)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateProfileSnapshot indicates an expected call of UpdateProfileSnapshot.
func (mr *MockUserStoreMockRecorder) UpdateProfileSnapshot(ctx, userID, platform, snap interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProfileSnapshot", reflect.TypeOf((*MockUserStore)(nil).UpdateProfileSnapshot), ctx, userID, platform, snap)
}

// MockAnalyticsStore is a mock of AnalyticsStore interface.
type MockAnalyticsStore struct {
	ctrl     *gomock.Controller
	recorder *MockAnalyticsStoreMockRecorder
}

// MockAnalyticsStoreMockRecorder is the mock recorder for MockAnalyticsStore.
type MockAnalyticsStoreMockRecorder struct {
	mock *MockAnalyticsStore
}

// NewMockAnalyticsStore creates a new mock instance.
func NewMockAnalyticsStore(ctrl *gomock.Controller) *MockAnalyticsStore {
	mock := &MockAnalyticsStore{ctrl: ctrl}
	mock.recorder = &MockAnalyticsStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAnalyticsStore) EXPECT() *MockAnalyticsStoreMockRecorder {
	return m.recorder
}

// CreateShell mocks base method.
func (m *MockAnalyticsStore) CreateShell(ctx context.Context, rec *dbmongo.AnalyticsRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateShell", ctx, rec)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateShell indicates an expected call of CreateShell.
func (mr *MockAnalyticsStoreMockRecorder) CreateShell(ctx, rec interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateShell", reflect.TypeOf((*MockAnalyticsStore)(nil).CreateShell), ctx, rec)
}

// UpsertMetrics mocks base method.
func (m *MockAnalyticsStore) UpsertMetrics(ctx context.Context, postID primitive.ObjectID, platform common.Platform, item common.ActivityItem) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertMetrics", ctx, postID, platform, item)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertMetrics indicates an expected call of UpsertMetrics.
func (mr *MockAnalyticsStoreMockRecorder) UpsertMetrics(ctx, postID, platform, item interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertMetrics", reflect.TypeOf((*MockAnalyticsStore)(nil).UpsertMetrics), ctx, postID, platform, item)
}

// MockMediaReclaimer is a mock of MediaReclaimer interface.
type MockMediaReclaimer struct {
	ctrl     *gomock.Controller
	recorder *MockMediaReclaimerMockRecorder
}

// MockMediaReclaimerMockRecorder is the mock recorder for MockMediaReclaimer.
type MockMediaReclaimerMockRecorder struct {
	mock *MockMediaReclaimer
}

// NewMockMediaReclaimer creates a new mock instance.
func NewMockMediaReclaimer(ctrl *gomock.Controller) *MockMediaReclaimer {
	mock := &MockMediaReclaimer{ctrl: ctrl}
	mock.recorder = &MockMediaReclaimerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMediaReclaimer) EXPECT() *MockMediaReclaimerMockRecorder {
	return m.recorder
}

// Reclaim mocks base method.
func (m *MockMediaReclaimer) Reclaim(ctx context.Context, mediaPath string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reclaim", ctx, mediaPath)
	ret0, _ := ret[0].(error)
	return ret0
}

// Reclaim indicates an expected call of Reclaim.
func (mr *MockMediaReclaimerMockRecorder) Reclaim(ctx, mediaPath interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reclaim", reflect.TypeOf((*MockMediaReclaimer)(nil).Reclaim), ctx, mediaPath)
}

// MockNotifier is a mock of Notifier interface.
type MockNotifier struct {
	ctrl     *gomock.Controller
	recorder *MockNotifierMockRecorder
}

// MockNotifierMockRecorder is the mock recorder for MockNotifier.
type MockNotifierMockRecorder struct {
	mock *MockNotifier
}

// NewMockNotifier creates a new mock instance.
func NewMockNotifier(ctrl *gomock.Controller) *MockNotifier {
	mock := &MockNotifier{ctrl: ctrl}
	mock.recorder = &MockNotifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotifier) EXPECT() *MockNotifierMockRecorder {
	return m.recorder
}

// NotifyUser mocks base method.
func (m *MockNotifier) NotifyUser(receiverID, message string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "NotifyUser", receiverID, message)
}

// NotifyUser indicates an expected call of NotifyUser.
func (mr *MockNotifierMockRecorder) NotifyUser(receiverID, message interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NotifyUser", reflect.TypeOf((*MockNotifier)(nil).NotifyUser), receiverID, message)
}

// NotifyPublish mocks base method.
func (m *MockNotifier) NotifyPublish(receiverID, message string, platform common.Platform, postID string, success bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "NotifyPublish", receiverID, message, platform, postID, success)
}

// NotifyPublish indicates an expected call of NotifyPublish.
func (mr *MockNotifierMockRecorder) NotifyPublish(receiverID, message, platform, postID, success interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NotifyPublish", reflect.TypeOf((*MockNotifier)(nil).NotifyPublish), receiverID, message, platform, postID, success)
}

// MockPublisher is a mock of the platform Publisher interface.
type MockPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockPublisherMockRecorder
	platform common.Platform
}

// MockPublisherMockRecorder is the mock recorder for MockPublisher.
type MockPublisherMockRecorder struct {
	mock *MockPublisher
}

// NewMockPublisher creates a new mock instance.
func NewMockPublisher(ctrl *gomock.Controller, platform common.Platform) *MockPublisher {
	mock := &MockPublisher{ctrl: ctrl, platform: platform}
	mock.recorder = &MockPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPublisher) EXPECT() *MockPublisherMockRecorder {
	return m.recorder
}

// Platform mocks base method.
func (m *MockPublisher) Platform() common.Platform {
	return m.platform
}

// Publish mocks base method.
func (m *MockPublisher) Publish(ctx context.Context, post *dbmongo.Post, sub *dbmongo.PlatformContent, account *dbmongo.SocialAccount) (*common.PublishResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Publish", ctx, post, sub, account)
	ret0, _ := ret[0].(*common.PublishResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Publish indicates an expected call of Publish.
func (mr *MockPublisherMockRecorder) Publish(ctx, post, sub, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Publish", reflect.TypeOf((*MockPublisher)(nil).Publish), ctx, post, sub, account)
}

// MockMetricsFetcher is a mock of the platform MetricsFetcher interface.
type MockMetricsFetcher struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsFetcherMockRecorder
	platform common.Platform
}

// MockMetricsFetcherMockRecorder is the mock recorder for MockMetricsFetcher.
type MockMetricsFetcherMockRecorder struct {
	mock *MockMetricsFetcher
}

// NewMockMetricsFetcher creates a new mock instance.
func NewMockMetricsFetcher(ctrl *gomock.Controller, platform common.Platform) *MockMetricsFetcher {
	mock := &MockMetricsFetcher{ctrl: ctrl, platform: platform}
	mock.recorder = &MockMetricsFetcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetricsFetcher) EXPECT() *MockMetricsFetcherMockRecorder {
	return m.recorder
}

// Platform mocks base method.
func (m *MockMetricsFetcher) Platform() common.Platform {
	return m.platform
}

// FetchAccountMetrics mocks base method.
func (m *MockMetricsFetcher) FetchAccountMetrics(ctx context.Context, account *dbmongo.SocialAccount) (*common.AccountMetrics, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchAccountMetrics", ctx, account)
	ret0, _ := ret[0].(*common.AccountMetrics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FetchAccountMetrics indicates an expected call of FetchAccountMetrics.
func (mr *MockMetricsFetcherMockRecorder) FetchAccountMetrics(ctx, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FetchAccountMetrics", reflect.TypeOf((*MockMetricsFetcher)(nil).FetchAccountMetrics), ctx, account)
}

// FetchRecentItems mocks base method.
func (m *MockMetricsFetcher) FetchRecentItems(ctx context.Context, account *dbmongo.SocialAccount, limit int) ([]common.ActivityItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchRecentItems", ctx, account, limit)
	ret0, _ := ret[0].([]common.ActivityItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FetchRecentItems indicates an expected call of FetchRecentItems.
func (mr *MockMetricsFetcherMockRecorder) FetchRecentItems(ctx, account, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FetchRecentItems", reflect.TypeOf((*MockMetricsFetcher)(nil).FetchRecentItems), ctx, account, limit)
}
