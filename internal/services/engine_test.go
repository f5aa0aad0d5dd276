package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/navid88/opencircle/backend/internal/repositories"
	"github.com/navid88/opencircle/backend/pkg/validators"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEngine wires the full engine onto an in-memory database.
type testEngine struct {
	db            *gorm.DB
	accounts      *AccountService
	friends       *FriendService
	visibility    *VisibilityService
	moderation    *ModerationService
	groups        *GroupService
	notifications *NotificationService
	admin         *AdminService
	postRepo      repositories.PostRepository
	photoRepo     repositories.PhotoRepository
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every query sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.FriendRequest{},
		&models.Comment{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupJoinRequest{},
		&models.GroupMessage{},
		&models.AdminNotification{},
		&models.Post{},
		&models.Album{},
		&models.Photo{},
	))

	validate := validators.New()
	accountRepo := repositories.NewAccountRepository(db)
	friendshipRepo := repositories.NewFriendshipRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	notificationRepo := repositories.NewAdminNotificationRepository(db)
	postRepo := repositories.NewPostRepository(db)
	photoRepo := repositories.NewPhotoRepository(db)

	friends := NewFriendService(friendshipRepo, accountRepo)
	content := NewContentService(postRepo, photoRepo)
	visibility := NewVisibilityService(accountRepo, friends, content, postRepo)
	notifications := NewNotificationService(notificationRepo)

	return &testEngine{
		db:            db,
		accounts:      NewAccountService(accountRepo, validate),
		friends:       friends,
		visibility:    visibility,
		moderation:    NewModerationService(commentRepo, content, visibility, validate),
		groups:        NewGroupService(groupRepo, validate),
		notifications: notifications,
		admin:         NewAdminService(accountRepo, postRepo, photoRepo, commentRepo, notifications, validate),
		postRepo:      postRepo,
		photoRepo:     photoRepo,
	}
}

func (e *testEngine) account(t *testing.T, name string, public bool, role string) *models.Account {
	t.Helper()
	account, err := e.accounts.Create(context.Background(), models.CreateAccountRequest{
		DisplayName:     name,
		IsProfilePublic: public,
		Role:            role,
	})
	require.NoError(t, err)
	return account
}

func (e *testEngine) post(t *testing.T, ownerID string) *models.Post {
	t.Helper()
	post := &models.Post{UserID: ownerID, Content: "hello"}
	require.NoError(t, e.postRepo.Create(context.Background(), post))
	return post
}

func (e *testEngine) photo(t *testing.T, ownerID string) *models.Photo {
	t.Helper()
	album := &models.Album{UserID: ownerID, Title: "album"}
	require.NoError(t, e.photoRepo.CreateAlbum(context.Background(), album))
	photo := &models.Photo{AlbumID: album.ID, Caption: "photo"}
	require.NoError(t, e.photoRepo.CreatePhoto(context.Background(), photo))
	return photo
}

func (e *testEngine) befriend(t *testing.T, a, b string) {
	t.Helper()
	req, err := e.friends.SendRequest(context.Background(), a, b)
	require.NoError(t, err)
	require.NoError(t, e.friends.Accept(context.Background(), req.ID, b))
}
