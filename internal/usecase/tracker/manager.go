package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"teamflow-tracker/internal/domain/member"
	"teamflow-tracker/internal/domain/namekey"
	"teamflow-tracker/internal/domain/project"
	"teamflow-tracker/internal/domain/task"
)

// Manager はプロジェクト・メンバー・タスクのレジストリを束ねるユースケース。
// 公開メソッドは 1 つの mutex で直列化される。
// 複合操作はすべての検証を終えてから状態を変更する。
type Manager struct {
	ProjectRepo ProjectRepository
	MemberRepo  MemberRepository
	TaskRepo    TaskRepository

	Now    func() time.Time
	NewID  func() string
	Logger *zap.Logger

	mu sync.Mutex
}

// NewManager は Manager を生成する。logger が nil の場合は何も出力しない。
func NewManager(projects ProjectRepository, members MemberRepository, tasks TaskRepository, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		ProjectRepo: projects,
		MemberRepo:  members,
		TaskRepo:    tasks,
		Now:         time.Now,
		NewID:       uuid.NewString,
		Logger:      logger,
	}
}

// CreateProjectInput はプロジェクト作成の入力。
type CreateProjectInput struct {
	Name        string
	Description string
	DueDate     *time.Time
}

// CreateMemberInput はメンバー登録の入力。
type CreateMemberInput struct {
	Name  string
	Role  string
	Email string
}

// CreateTaskInput はタスク作成の入力。名前はすべて大文字小文字を区別しない。
type CreateTaskInput struct {
	ProjectName     string
	Title           string
	Description     string
	ResponsibleName string
	DueDate         *time.Time
	Priority        int
}

// AddProject は構築済みのプロジェクトを登録する。
func (m *Manager) AddProject(ctx context.Context, p *project.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.addProject(ctx, p)
}

// CreateProject はプロジェクトを生成して登録する。
func (m *Manager) CreateProject(ctx context.Context, in CreateProjectInput) (*project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := project.NewProject(m.NewID(), in.Name, in.Description, in.DueDate, m.Now())
	if err != nil {
		return nil, err
	}
	if err := m.addProject(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *Manager) addProject(ctx context.Context, p *project.Project) error {
	if err := m.ProjectRepo.Save(ctx, p); err != nil {
		if errors.Is(err, ErrProjectAlreadyExists) {
			return newEntityError("project", p.Name, ErrProjectAlreadyExists)
		}
		return err
	}

	m.Logger.Debug("project added", zap.String("project", p.Name), zap.String("id", p.ID))
	return nil
}

// RegisterMember は構築済みのメンバーを登録する。
func (m *Manager) RegisterMember(ctx context.Context, mem *member.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.registerMember(ctx, mem)
}

// CreateMember はメンバーを生成して登録する。
func (m *Manager) CreateMember(ctx context.Context, in CreateMemberInput) (*member.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mem, err := member.NewMember(m.NewID(), in.Name, in.Role, in.Email, m.Now())
	if err != nil {
		return nil, err
	}
	if err := m.registerMember(ctx, mem); err != nil {
		return nil, err
	}
	return mem, nil
}

func (m *Manager) registerMember(ctx context.Context, mem *member.Member) error {
	if err := m.MemberRepo.Save(ctx, mem); err != nil {
		if errors.Is(err, ErrMemberAlreadyExists) {
			return newEntityError("member", mem.Name, ErrMemberAlreadyExists)
		}
		return err
	}

	m.Logger.Debug("member registered", zap.String("member", mem.Name), zap.String("id", mem.ID))
	return nil
}

// FindProject は名前でプロジェクトを探す。見つからなければ false。
func (m *Manager) FindProject(ctx context.Context, name string) (*project.Project, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.ProjectRepo.FindByName(ctx, name)
	return p, err == nil
}

// FindMember は名前でメンバーを探す。見つからなければ false。
func (m *Manager) FindMember(ctx context.Context, name string) (*member.Member, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mem, err := m.MemberRepo.FindByName(ctx, name)
	return mem, err == nil
}

// FindTask は全タスクからタイトルで最初に作成されたものを探す。
func (m *Manager) FindTask(ctx context.Context, title string) (*task.Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.TaskRepo.FindByTitle(ctx, title)
	return t, err == nil
}

// AddMemberToProject はメンバーをプロジェクトに参加させる。
// 検証順: プロジェクト → メンバー → 重複。
func (m *Manager) AddMemberToProject(ctx context.Context, projectName, memberName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.findProject(ctx, projectName)
	if err != nil {
		return err
	}
	mem, err := m.findMember(ctx, memberName)
	if err != nil {
		return err
	}

	if err := p.AddMember(mem.ID); err != nil {
		return newEntityError("member", mem.Name, err)
	}
	p.UpdatedAt = m.Now()

	m.Logger.Debug("member added to project",
		zap.String("project", p.Name),
		zap.String("member", mem.Name),
	)
	return nil
}

// CreateTask はタスクを生成し、プロジェクト・全体のタスク一覧・担当メンバーに登録する。
// 検証順: プロジェクト → メンバー → 担当者がプロジェクトのメンバーか。
func (m *Manager) CreateTask(ctx context.Context, in CreateTaskInput) (*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.findProject(ctx, in.ProjectName)
	if err != nil {
		return nil, err
	}
	mem, err := m.findMember(ctx, in.ResponsibleName)
	if err != nil {
		return nil, err
	}
	if !p.HasMember(mem.ID) {
		return nil, newEntityError("member", mem.Name, project.ErrResponsibleNotMember)
	}

	id := m.NewID()
	if _, err := m.TaskRepo.FindByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: %s", project.ErrDuplicateTask, id)
	}

	t, err := p.CreateTask(id, in.Title, in.Description, mem, m.Now(),
		task.WithDueDate(in.DueDate),
		task.WithPriority(in.Priority),
	)
	if err != nil {
		return nil, err
	}
	if err := m.TaskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	m.Logger.Debug("task created",
		zap.String("project", p.Name),
		zap.String("task", t.Title),
		zap.String("responsible", mem.Name),
		zap.Int("priority", t.Priority),
	)
	return t, nil
}

// CompleteTask はプロジェクト内のタスクを完了にする。完了済みでもエラーにしない。
func (m *Manager) CompleteTask(ctx context.Context, projectName, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.findProjectTask(ctx, projectName, title)
	if err != nil {
		return err
	}
	t.Complete(m.Now())

	m.Logger.Debug("task completed", zap.String("project", projectName), zap.String("task", t.Title))
	return nil
}

// StartTask はプロジェクト内のタスクを進行中にする。
func (m *Manager) StartTask(ctx context.Context, projectName, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.findProjectTask(ctx, projectName, title)
	if err != nil {
		return err
	}
	t.Start(m.Now())

	m.Logger.Debug("task started", zap.String("project", projectName), zap.String("task", t.Title))
	return nil
}

// SetTaskStatus は ID で指定したタスクの状態を変更する。
// 同じタイトルのタスクが複数あっても対象を取り違えない。
func (m *Manager) SetTaskStatus(ctx context.Context, taskID string, status task.TaskStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.TaskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return newEntityError("task", taskID, ErrTaskNotFound)
		}
		return err
	}

	now := m.Now()
	switch status {
	case task.StatusPending:
		t.Status = task.StatusPending
		t.UpdatedAt = now
	case task.StatusInProgress:
		t.Start(now)
	case task.StatusCompleted:
		t.Complete(now)
	default:
		rejected := string(status)
		return task.NewInvalidEnum("status", fmt.Errorf("%w: %s", task.ErrInvalidStatus, status), &rejected)
	}

	m.Logger.Debug("task status set", zap.String("id", t.ID), zap.String("status", string(t.Status)))
	return nil
}

// ReportProject はプロジェクトのレポートを生成する。
func (m *Manager) ReportProject(ctx context.Context, name string) (project.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.findProject(ctx, name)
	if err != nil {
		return project.Report{}, err
	}
	tasks, err := m.TaskRepo.ListByIDs(ctx, p.TaskIDs())
	if err != nil {
		return project.Report{}, err
	}
	return p.Report(tasks, m.Now()), nil
}

// ReportMember はメンバーのレポートを生成する。
// タスクは全体の一覧から担当者で抽出し、参加プロジェクトは登録順で列挙する。
func (m *Manager) ReportMember(ctx context.Context, name string) (MemberReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mem, err := m.findMember(ctx, name)
	if err != nil {
		return MemberReport{}, err
	}
	tasks, err := m.TaskRepo.ListByResponsible(ctx, mem.ID)
	if err != nil {
		return MemberReport{}, err
	}
	projects, err := m.ProjectRepo.List(ctx)
	if err != nil {
		return MemberReport{}, err
	}

	names := make([]string, 0)
	for _, p := range projects {
		if p.HasMember(mem.ID) {
			names = append(names, p.Name)
		}
	}

	return MemberReport{
		Name:         mem.Name,
		Role:         mem.Role,
		Email:        mem.Email,
		Counts:       task.Tally(tasks, m.Now()),
		ProjectNames: names,
	}, nil
}

// Projects は登録済みプロジェクトを登録順で返す。
func (m *Manager) Projects(ctx context.Context) ([]*project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ProjectRepo.List(ctx)
}

// Members は登録済みメンバーを登録順で返す。
func (m *Manager) Members(ctx context.Context) ([]*member.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.MemberRepo.List(ctx)
}

// Tasks は全プロジェクトのタスクを作成順で返す。
func (m *Manager) Tasks(ctx context.Context) ([]*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.TaskRepo.List(ctx)
}

// ListTasks は条件に一致するタスクを返す。
func (m *Manager) ListTasks(ctx context.Context, opts ...task.TaskQueryOption) ([]*task.Task, error) {
	q, err := task.NewTaskQuery(opts...)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.TaskRepo.Find(ctx, q, m.Now())
}

func (m *Manager) findProject(ctx context.Context, name string) (*project.Project, error) {
	p, err := m.ProjectRepo.FindByName(ctx, name)
	if errors.Is(err, ErrProjectNotFound) {
		return nil, newEntityError("project", name, ErrProjectNotFound)
	}
	return p, err
}

func (m *Manager) findMember(ctx context.Context, name string) (*member.Member, error) {
	mem, err := m.MemberRepo.FindByName(ctx, name)
	if errors.Is(err, ErrMemberNotFound) {
		return nil, newEntityError("member", name, ErrMemberNotFound)
	}
	return mem, err
}

// findProjectTask はプロジェクトのタスクだけを対象にタイトルで探す。
func (m *Manager) findProjectTask(ctx context.Context, projectName, title string) (*task.Task, error) {
	p, err := m.findProject(ctx, projectName)
	if err != nil {
		return nil, err
	}
	tasks, err := m.TaskRepo.ListByIDs(ctx, p.TaskIDs())
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if namekey.Equal(t.Title, title) {
			return t, nil
		}
	}
	return nil, newEntityError("task", title, ErrTaskNotFound)
}
