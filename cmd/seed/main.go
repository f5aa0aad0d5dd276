// Command seed provisions a development database with demo data, driving it
// through the engine services so the whole stack gets exercised end to end.
package main

import (
	"context"
	"log"

	"github.com/navid88/opencircle/backend/internal/models"
	"github.com/navid88/opencircle/backend/internal/repositories"
	"github.com/navid88/opencircle/backend/internal/services"
	"github.com/navid88/opencircle/backend/pkg/config"
	"github.com/navid88/opencircle/backend/pkg/logger"
	"github.com/navid88/opencircle/backend/pkg/validators"
)

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	validate := validators.New()

	accountRepo := repositories.NewAccountRepository(db.Postgres)
	friendshipRepo := repositories.NewFriendshipRepository(db.Postgres)
	commentRepo := repositories.NewCommentRepository(db.Postgres)
	groupRepo := repositories.NewGroupRepository(db.Postgres)
	notificationRepo := repositories.NewAdminNotificationRepository(db.Postgres)
	postRepo := repositories.NewPostRepository(db.Postgres)
	photoRepo := repositories.NewPhotoRepository(db.Postgres)

	accounts := services.NewAccountService(accountRepo, validate)
	friends := services.NewFriendService(friendshipRepo, accountRepo)
	content := services.NewContentService(postRepo, photoRepo)
	visibility := services.NewVisibilityService(accountRepo, friends, content, postRepo)
	moderation := services.NewModerationService(commentRepo, content, visibility, validate)
	groups := services.NewGroupService(groupRepo, validate)
	notifications := services.NewNotificationService(notificationRepo)
	admin := services.NewAdminService(accountRepo, postRepo, photoRepo, commentRepo, notifications, validate)

	if err := seed(ctx, accounts, friends, moderation, groups, admin, postRepo); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func seed(
	ctx context.Context,
	accounts *services.AccountService,
	friends *services.FriendService,
	moderation *services.ModerationService,
	groups *services.GroupService,
	admin *services.AdminService,
	posts repositories.PostRepository,
) error {
	alice, err := accounts.Create(ctx, models.CreateAccountRequest{DisplayName: "Alice", IsProfilePublic: false})
	if err != nil {
		return err
	}
	bob, err := accounts.Create(ctx, models.CreateAccountRequest{DisplayName: "Bob", IsProfilePublic: true})
	if err != nil {
		return err
	}
	root, err := accounts.Create(ctx, models.CreateAccountRequest{DisplayName: "Root", Role: "admin"})
	if err != nil {
		return err
	}

	post := &models.Post{UserID: alice.ID, Content: "First post"}
	if err := posts.Create(ctx, post); err != nil {
		return err
	}

	req, err := friends.SendRequest(ctx, bob.ID, alice.ID)
	if err != nil {
		return err
	}
	if err := friends.Accept(ctx, req.ID, alice.ID); err != nil {
		return err
	}

	comment, err := moderation.Submit(ctx, bob.ID, models.CreateCommentRequest{
		SubjectType: "post",
		SubjectID:   post.ID,
		Content:     "Nice one!",
	})
	if err != nil {
		return err
	}
	if err := moderation.Approve(ctx, comment.ID, alice.ID); err != nil {
		return err
	}

	group, err := groups.CreateGroup(ctx, alice.ID, models.CreateGroupRequest{
		Name:      "Hiking club",
		MemberIDs: []string{bob.ID},
	})
	if err != nil {
		return err
	}
	if _, err := groups.SendMessage(ctx, group.ID, bob.ID, "When is the next hike?"); err != nil {
		return err
	}

	return admin.SendWarning(ctx, root.ID, models.SendWarningRequest{
		RecipientID: bob.ID,
		Message:     "Welcome aboard. Play nice.",
	})
}
