package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var (
	testSecret = []byte("0123456789abcdef0123456789abcdef")
	testNow    = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
)

func fixedClock() time.Time { return testNow }

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func newAuthService(t *testing.T, st store.Store) *AuthService {
	t.Helper()

	hasher, err := cryptox.NewHasher("pepper")
	require.NoError(t, err)

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	verifier, err := jwtx.NewVerifierHS256(testSecret, "taskboard")
	require.NoError(t, err)
	verifier.Now = fixedClock

	return &AuthService{
		Store:    st,
		Hasher:   hasher,
		Signer:   signer,
		Verifier: verifier,
		Issuer:   "taskboard",
		Now:      fixedClock,
	}
}

func registerUser(t *testing.T, svc *AuthService, email string) domain.PublicUser {
	t.Helper()

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:           email,
		Name:            "Test User",
		Password:        "correct horse",
		ConfirmPassword: "correct horse",
	})
	require.NoError(t, err)
	return u
}

// emailBlindStore hides existing users from GetUserByEmail so Register falls
// through to the insert.
type emailBlindStore struct {
	store.Store
}

func (s emailBlindStore) Users() store.Users { return emailBlindUsers{s.Store.Users()} }

type emailBlindUsers struct {
	store.Users
}

func (emailBlindUsers) GetUserByEmail(context.Context, string) (domain.User, error) {
	return domain.User{}, store.ErrNotFound
}

func TestRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(t, st)

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "x", ConfirmPassword: "x"})
		require.True(t, IsKind(err, KindValidation))
		require.Contains(t, err.Error(), MsgRegisterFieldsRequired)
	})

	t.Run("password mismatch", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Name: "A", Password: "x", ConfirmPassword: "y"})
		require.True(t, IsKind(err, KindValidation))
		require.Contains(t, err.Error(), MsgPasswordsDoNotMatch)
	})

	t.Run("returns public projection", func(t *testing.T) {
		u := registerUser(t, svc, "new@example.com")
		require.NotEmpty(t, u.ID)
		require.Equal(t, "new@example.com", u.Email)

		stored, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotEqual(t, "correct horse", stored.PasswordHash)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		registerUser(t, svc, "dup@example.com")

		_, err := svc.Register(ctx, RegisterInput{
			Email: "dup@example.com", Name: "Other", Password: "pw", ConfirmPassword: "pw",
		})
		require.True(t, IsKind(err, KindConflict))
	})

	t.Run("unique index catches racing insert", func(t *testing.T) {
		registerUser(t, svc, "race@example.com")

		racy := newAuthService(t, emailBlindStore{st})
		_, err := racy.Register(ctx, RegisterInput{
			Email: "race@example.com", Name: "Other", Password: "pw", ConfirmPassword: "pw",
		})
		require.True(t, IsKind(err, KindConflict))

		u, err := st.Users().GetUserByEmail(ctx, "race@example.com")
		require.NoError(t, err)
		require.Equal(t, "Test User", u.Name)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newAuthService(t, newTestStore(t))
	user := registerUser(t, svc, "login@example.com")

	t.Run("issues a 30 day token for the user", func(t *testing.T) {
		sess, err := svc.Login(ctx, "login@example.com", "correct horse")
		require.NoError(t, err)
		require.Equal(t, user, sess.User)
		require.Equal(t, testNow.Add(30*24*time.Hour), sess.ExpiresAt)

		claims, err := svc.Verifier.Verify(sess.Token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, 30*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "login@example.com", "")
		require.True(t, IsKind(err, KindValidation))
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, wrongPw := svc.Login(ctx, "login@example.com", "nope")
		_, unknown := svc.Login(ctx, "ghost@example.com", "correct horse")

		require.True(t, IsKind(wrongPw, KindAuthentication))
		require.True(t, IsKind(unknown, KindAuthentication))
		require.Equal(t, wrongPw.Error(), unknown.Error())
		require.Contains(t, wrongPw.Error(), MsgCredentialsMismatch)
	})

	t.Run("email match is case sensitive", func(t *testing.T) {
		_, err := svc.Login(ctx, "LOGIN@example.com", "correct horse")
		require.True(t, IsKind(err, KindAuthentication))
	})
}

func TestVerifySession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(t, st)
	user := registerUser(t, svc, "session@example.com")

	sess, err := svc.Login(ctx, "session@example.com", "correct horse")
	require.NoError(t, err)

	t.Run("valid bearer token", func(t *testing.T) {
		got, err := svc.VerifySession(ctx, "Bearer "+sess.Token)
		require.NoError(t, err)
		require.Equal(t, user, got)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := svc.VerifySession(ctx, "")
		require.True(t, IsKind(err, KindAuthentication))
		require.Contains(t, err.Error(), MsgLoginRequired)

		_, err = svc.VerifySession(ctx, "Basic abc")
		require.Contains(t, err.Error(), MsgLoginRequired)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := svc.VerifySession(ctx, "Bearer "+sess.Token+"x")
		require.True(t, IsKind(err, KindAuthentication))
		require.Contains(t, err.Error(), MsgInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		late := newAuthService(t, st)
		late.Verifier.(*jwtx.HS256Verifier).Now = func() time.Time {
			return testNow.Add(30 * 24 * time.Hour)
		}
		_, err := late.VerifySession(ctx, "Bearer "+sess.Token)
		require.Contains(t, err.Error(), MsgInvalidToken)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("01HZZZZZZZZZZZZZZZZZZZZZZZ", "taskboard", time.Hour, testNow)
		token, err := svc.Signer.Sign(claims)
		require.NoError(t, err)

		_, err = svc.VerifySession(ctx, "Bearer "+token)
		require.True(t, IsKind(err, KindAuthentication))
		require.Contains(t, err.Error(), MsgUserGone)
	})
}

type taskFixture struct {
	tasks *TaskService
	alice string
	bob   string
}

func newTaskFixture(t *testing.T) taskFixture {
	t.Helper()

	st := newTestStore(t)
	auth := newAuthService(t, st)
	return taskFixture{
		tasks: &TaskService{Store: st, Now: fixedClock},
		alice: registerUser(t, auth, "alice@example.com").ID,
		bob:   registerUser(t, auth, "bob@example.com").ID,
	}
}

func taskInput(title string) TaskInput {
	return TaskInput{
		Title:    title,
		Status:   domain.StatusTodo,
		Priority: domain.PriorityHigh,
		Checklists: []domain.ChecklistItem{
			{Title: "step one", Checked: true},
			{Title: "step two"},
		},
	}
}

func at(t time.Time) *time.Time { return &t }

func TestCreateTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newTaskFixture(t)

	t.Run("defaults created at to now", func(t *testing.T) {
		task, err := f.tasks.CreateTask(ctx, f.alice, taskInput("Write report"))
		require.NoError(t, err)
		require.NotEmpty(t, task.ID)
		require.Equal(t, f.alice, task.CreatedBy)
		require.Equal(t, testNow, task.CreatedAt)
		require.Len(t, task.Checklists, 2)
	})

	t.Run("keeps caller supplied created at", func(t *testing.T) {
		in := taskInput("Backdated")
		in.CreatedAt = at(testNow.Add(-48 * time.Hour))

		task, err := f.tasks.CreateTask(ctx, f.alice, in)
		require.NoError(t, err)
		require.Equal(t, testNow.Add(-48*time.Hour), task.CreatedAt)
	})

	t.Run("rejects unknown enums without writing", func(t *testing.T) {
		in := taskInput("Bad status")
		in.Status = "blocked"
		_, err := f.tasks.CreateTask(ctx, f.bob, in)
		require.True(t, IsKind(err, KindValidation))

		in = taskInput("Bad priority")
		in.Priority = "urgent"
		_, err = f.tasks.CreateTask(ctx, f.bob, in)
		require.True(t, IsKind(err, KindValidation))

		_, err = f.tasks.CreateTask(ctx, f.bob, TaskInput{Status: domain.StatusTodo, Priority: domain.PriorityLow})
		require.True(t, IsKind(err, KindValidation))

		a, err := f.tasks.Analytics(ctx, f.bob)
		require.NoError(t, err)
		require.Equal(t, domain.Analytics{}, a)
	})
}

func TestListTasksWindow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newTaskFixture(t)

	end := time.Date(2026, 3, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	start := end.AddDate(0, 0, -7)

	create := func(title string, createdAt time.Time) {
		in := taskInput(title)
		in.CreatedAt = at(createdAt)
		_, err := f.tasks.CreateTask(ctx, f.alice, in)
		require.NoError(t, err)
	}

	create("at start", start)
	create("just after start", start.Add(time.Millisecond))
	create("at end", end)
	create("after end", end.Add(time.Millisecond))

	_, err := f.tasks.CreateTask(ctx, f.bob, taskInput("someone else"))
	require.NoError(t, err)

	tasks, err := f.tasks.ListTasks(ctx, f.alice, 7)
	require.NoError(t, err)

	var titles []string
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	require.ElementsMatch(t, []string{"just after start", "at end"}, titles)

	t.Run("non-positive range is empty", func(t *testing.T) {
		tasks, err := f.tasks.ListTasks(ctx, f.alice, 0)
		require.NoError(t, err)
		require.Empty(t, tasks)

		tasks, err = f.tasks.ListTasks(ctx, f.alice, -3)
		require.NoError(t, err)
		require.Empty(t, tasks)
	})

	t.Run("unknown owner gets empty list", func(t *testing.T) {
		tasks, err := f.tasks.ListTasks(ctx, "nobody", 7)
		require.NoError(t, err)
		require.NotNil(t, tasks)
		require.Empty(t, tasks)
	})
}

func TestListTasksHugeRange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newTaskFixture(t)

	ancient := taskInput("ancient")
	ancient.CreatedAt = at(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err := f.tasks.CreateTask(ctx, f.alice, ancient)
	require.NoError(t, err)

	_, err = f.tasks.CreateTask(ctx, f.alice, taskInput("today"))
	require.NoError(t, err)

	future := taskInput("tomorrow")
	future.CreatedAt = at(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	_, err = f.tasks.CreateTask(ctx, f.alice, future)
	require.NoError(t, err)

	for _, rangeDays := range []int{maxBoundedRangeDays, maxBoundedRangeDays + 1, 1_000_000_000_000} {
		tasks, err := f.tasks.ListTasks(ctx, f.alice, rangeDays)
		require.NoError(t, err)

		var titles []string
		for _, task := range tasks {
			titles = append(titles, task.Title)
		}
		require.ElementsMatch(t, []string{"ancient", "today"}, titles, "rangeDays=%d", rangeDays)
	}
}

func TestGetTaskOwnership(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newTaskFixture(t)

	task, err := f.tasks.CreateTask(ctx, f.alice, taskInput("Private"))
	require.NoError(t, err)

	got, err := f.tasks.GetTask(ctx, f.alice, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.Title, got.Title)

	_, err = f.tasks.GetTask(ctx, f.bob, task.ID)
	require.True(t, IsKind(err, KindNotFound))

	shared := *f.tasks
	shared.SharedRead = true
	got, err = shared.GetTask(ctx, f.bob, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.ID, got.ID)

	_, err = shared.GetTask(ctx, f.bob, "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	require.True(t, IsKind(err, KindNotFound))
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newTaskFixture(t)

	task, err := f.tasks.CreateTask(ctx, f.alice, taskInput("Original"))
	require.NoError(t, err)

	t.Run("owner replaces all fields", func(t *testing.T) {
		updated, err := f.tasks.UpdateTask(ctx, f.alice, task.ID, TaskInput{
			Title:    "Renamed",
			Status:   domain.StatusDone,
			Priority: domain.PriorityLow,
			DueDate:  at(testNow.Add(-time.Hour)),
		})
		require.NoError(t, err)
		require.Equal(t, "Renamed", updated.Title)
		require.Equal(t, domain.StatusDone, updated.Status)
		require.Empty(t, updated.Checklists)
		require.Equal(t, task.CreatedAt, updated.CreatedAt)
		require.False(t, updated.IsExpired, "done tasks never expire")
	})

	t.Run("non owner sees not found", func(t *testing.T) {
		_, err := f.tasks.UpdateTask(ctx, f.bob, task.ID, taskInput("Hijacked"))
		require.True(t, IsKind(err, KindNotFound))

		got, err := f.tasks.GetTask(ctx, f.alice, task.ID)
		require.NoError(t, err)
		require.Equal(t, "Renamed", got.Title)
	})

	t.Run("validation runs before the write", func(t *testing.T) {
		in := taskInput("Still valid title")
		in.Priority = "urgent"
		_, err := f.tasks.UpdateTask(ctx, f.alice, task.ID, in)
		require.True(t, IsKind(err, KindValidation))

		got, err := f.tasks.GetTask(ctx, f.alice, task.ID)
		require.NoError(t, err)
		require.Equal(t, domain.PriorityLow, got.Priority)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := f.tasks.UpdateTask(ctx, f.alice, "01HZZZZZZZZZZZZZZZZZZZZZZZ", taskInput("x"))
		require.True(t, IsKind(err, KindNotFound))
	})
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newTaskFixture(t)

	task, err := f.tasks.CreateTask(ctx, f.alice, taskInput("Doomed"))
	require.NoError(t, err)

	err = f.tasks.DeleteTask(ctx, f.alice, "")
	require.True(t, IsKind(err, KindValidation))
	require.Contains(t, err.Error(), MsgTaskIDRequired)

	err = f.tasks.DeleteTask(ctx, f.bob, task.ID)
	require.True(t, IsKind(err, KindNotFound))

	require.NoError(t, f.tasks.DeleteTask(ctx, f.alice, task.ID))

	err = f.tasks.DeleteTask(ctx, f.alice, task.ID)
	require.True(t, IsKind(err, KindNotFound))
}

func TestAnalytics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newTaskFixture(t)

	empty, err := f.tasks.Analytics(ctx, f.alice)
	require.NoError(t, err)
	require.Equal(t, domain.Analytics{}, empty)

	yesterday := testNow.Add(-24 * time.Hour)

	in := TaskInput{Title: "X", Status: domain.StatusTodo, Priority: domain.PriorityHigh, DueDate: &yesterday}
	_, err = f.tasks.CreateTask(ctx, f.alice, in)
	require.NoError(t, err)

	a, err := f.tasks.Analytics(ctx, f.alice)
	require.NoError(t, err)
	require.Equal(t, domain.Analytics{
		Status:     domain.StatusCounts{Todo: 1},
		Priorities: domain.PriorityCounts{High: 1, Due: 1},
	}, a)

	// Analytics has no time window and ignores other owners.
	old := TaskInput{
		Title:     "Ancient",
		Status:    domain.StatusDone,
		Priority:  domain.PriorityLow,
		DueDate:   &yesterday,
		CreatedAt: at(testNow.AddDate(-1, 0, 0)),
	}
	_, err = f.tasks.CreateTask(ctx, f.alice, old)
	require.NoError(t, err)
	_, err = f.tasks.CreateTask(ctx, f.bob, taskInput("Bob's"))
	require.NoError(t, err)

	a, err = f.tasks.Analytics(ctx, f.alice)
	require.NoError(t, err)
	require.Equal(t, domain.Analytics{
		Status:     domain.StatusCounts{Todo: 1, Done: 1},
		Priorities: domain.PriorityCounts{High: 1, Low: 1, Due: 1},
	}, a)
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	err := notFoundError(MsgTaskNotFound, store.ErrNotFound)
	require.True(t, IsKind(err, KindNotFound))
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Equal(t, KindNotFound, KindOf(err))
	require.Equal(t, KindInternal, KindOf(context.DeadlineExceeded))
	require.False(t, IsKind(nil, KindValidation))
}
