package service

import (
	"context"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// MockUserRepository is a map-backed UserRepository for tests
type MockUserRepository struct {
	users  map[int64]*domain.User
	nextID int64
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[int64]*domain.User), nextID: 1}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := m.GetByEmail(ctx, email)
	return u != nil, nil
}

// MockStudentRepository is a map-backed StudentRepository for tests
type MockStudentRepository struct {
	students map[int64]*domain.Student
	nextID   int64
}

func NewMockStudentRepository() *MockStudentRepository {
	return &MockStudentRepository{students: make(map[int64]*domain.Student), nextID: 1}
}

func (m *MockStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	student.ID = m.nextID
	m.nextID++
	m.students[student.ID] = student
	return nil
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	return m.students[id], nil
}

func (m *MockStudentRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Student, error) {
	for _, s := range m.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, nil
}

func (m *MockStudentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	var students []*domain.Student
	for _, s := range m.students {
		students = append(students, s)
	}
	return students, nil
}

func (m *MockStudentRepository) Update(ctx context.Context, student *domain.Student) error {
	m.students[student.ID] = student
	return nil
}

func (m *MockStudentRepository) Delete(ctx context.Context, id int64) error {
	delete(m.students, id)
	return nil
}

// MockTeacherRepository is a map-backed TeacherRepository for tests
type MockTeacherRepository struct {
	teachers map[int64]*domain.Teacher
	nextID   int64
}

func NewMockTeacherRepository() *MockTeacherRepository {
	return &MockTeacherRepository{teachers: make(map[int64]*domain.Teacher), nextID: 1}
}

func (m *MockTeacherRepository) Create(ctx context.Context, teacher *domain.Teacher) error {
	teacher.ID = m.nextID
	m.nextID++
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *MockTeacherRepository) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	return m.teachers[id], nil
}

func (m *MockTeacherRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Teacher, error) {
	for _, t := range m.teachers {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, nil
}

func (m *MockTeacherRepository) List(ctx context.Context) ([]*domain.Teacher, error) {
	var teachers []*domain.Teacher
	for _, t := range m.teachers {
		teachers = append(teachers, t)
	}
	return teachers, nil
}

func (m *MockTeacherRepository) Update(ctx context.Context, teacher *domain.Teacher) error {
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *MockTeacherRepository) Delete(ctx context.Context, id int64) error {
	delete(m.teachers, id)
	return nil
}

// MockCompanyRepository is a map-backed CompanyRepository for tests
type MockCompanyRepository struct {
	companies map[int64]*domain.Company
	nextID    int64
}

func NewMockCompanyRepository() *MockCompanyRepository {
	return &MockCompanyRepository{companies: make(map[int64]*domain.Company), nextID: 1}
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	company.ID = m.nextID
	m.nextID++
	m.companies[company.ID] = company
	return nil
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	return m.companies[id], nil
}

func (m *MockCompanyRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	for _, c := range m.companies {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	var companies []*domain.Company
	for _, c := range m.companies {
		companies = append(companies, c)
	}
	return companies, nil
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	m.companies[company.ID] = company
	return nil
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id int64) error {
	delete(m.companies, id)
	return nil
}

// MockInternshipRepository is a map-backed InternshipRepository for tests
type MockInternshipRepository struct {
	internships map[int64]*domain.Internship
	nextID      int64
}

func NewMockInternshipRepository() *MockInternshipRepository {
	return &MockInternshipRepository{internships: make(map[int64]*domain.Internship), nextID: 1}
}

func (m *MockInternshipRepository) Create(ctx context.Context, internship *domain.Internship) error {
	internship.ID = m.nextID
	m.nextID++
	m.internships[internship.ID] = internship
	return nil
}

func (m *MockInternshipRepository) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	return m.internships[id], nil
}

func (m *MockInternshipRepository) List(ctx context.Context) ([]*domain.Internship, error) {
	var internships []*domain.Internship
	for _, i := range m.internships {
		internships = append(internships, i)
	}
	return internships, nil
}

func (m *MockInternshipRepository) Update(ctx context.Context, internship *domain.Internship) error {
	m.internships[internship.ID] = internship
	return nil
}

func (m *MockInternshipRepository) Delete(ctx context.Context, id int64) error {
	delete(m.internships, id)
	return nil
}

// MockApplicationRepository is a map-backed ApplicationRepository for tests
type MockApplicationRepository struct {
	applications map[int64]*domain.Application
	nextID       int64
}

func NewMockApplicationRepository() *MockApplicationRepository {
	return &MockApplicationRepository{applications: make(map[int64]*domain.Application), nextID: 1}
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *domain.Application) error {
	application.ID = m.nextID
	m.nextID++
	m.applications[application.ID] = application
	return nil
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	return m.applications[id], nil
}

func (m *MockApplicationRepository) List(ctx context.Context) ([]*domain.Application, error) {
	var applications []*domain.Application
	for _, a := range m.applications {
		applications = append(applications, a)
	}
	return applications, nil
}

func (m *MockApplicationRepository) Update(ctx context.Context, application *domain.Application) error {
	m.applications[application.ID] = application
	return nil
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id int64) error {
	delete(m.applications, id)
	return nil
}

// MockAgreementRepository is a map-backed AgreementRepository for tests
type MockAgreementRepository struct {
	agreements map[int64]*domain.Agreement
	nextID     int64
}

func NewMockAgreementRepository() *MockAgreementRepository {
	return &MockAgreementRepository{agreements: make(map[int64]*domain.Agreement), nextID: 1}
}

func (m *MockAgreementRepository) Create(ctx context.Context, agreement *domain.Agreement) error {
	agreement.ID = m.nextID
	m.nextID++
	copied := *agreement
	m.agreements[agreement.ID] = &copied
	return nil
}

func (m *MockAgreementRepository) GetByID(ctx context.Context, id int64) (*domain.Agreement, error) {
	a, ok := m.agreements[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *MockAgreementRepository) ExistsByApplication(ctx context.Context, applicationID int64) (bool, error) {
	for _, a := range m.agreements {
		if a.ApplicationID == applicationID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockAgreementRepository) List(ctx context.Context) ([]*domain.Agreement, error) {
	var agreements []*domain.Agreement
	for _, a := range m.agreements {
		agreements = append(agreements, a)
	}
	return agreements, nil
}

func (m *MockAgreementRepository) Update(ctx context.Context, agreement *domain.Agreement) error {
	copied := *agreement
	m.agreements[agreement.ID] = &copied
	return nil
}

func (m *MockAgreementRepository) CompareAndUpdateStatus(ctx context.Context, id int64, from, to domain.AgreementStatus) (bool, error) {
	a, ok := m.agreements[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	return true, nil
}

func (m *MockAgreementRepository) Delete(ctx context.Context, id int64) error {
	delete(m.agreements, id)
	return nil
}

// MockNotificationRepository is a map-backed NotificationRepository for tests
type MockNotificationRepository struct {
	notifications map[int64]*domain.Notification
	nextID        int64
}

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{notifications: make(map[int64]*domain.Notification), nextID: 1}
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	notification.ID = m.nextID
	m.nextID++
	m.notifications[notification.ID] = notification
	return nil
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	return m.notifications[id], nil
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id int64) error {
	if n, ok := m.notifications[id]; ok {
		n.IsRead = true
	}
	return nil
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id int64) error {
	delete(m.notifications, id)
	return nil
}

// MockMessageRepository is a map-backed MessageRepository for tests
type MockMessageRepository struct {
	messages map[int64]*domain.Message
	nextID   int64
}

func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{messages: make(map[int64]*domain.Message), nextID: 1}
}

func (m *MockMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	message.ID = m.nextID
	m.nextID++
	m.messages[message.ID] = message
	return nil
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	return m.messages[id], nil
}

func (m *MockMessageRepository) ListConversation(ctx context.Context, userA, userB int64) ([]*domain.Message, error) {
	var messages []*domain.Message
	for _, msg := range m.messages {
		if (msg.SenderID == userA && msg.RecipientID == userB) ||
			(msg.SenderID == userB && msg.RecipientID == userA) {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id int64) error {
	if msg, ok := m.messages[id]; ok {
		msg.IsRead = true
	}
	return nil
}

func (m *MockMessageRepository) Delete(ctx context.Context, id int64) error {
	delete(m.messages, id)
	return nil
}

// MockFileStore keeps stored files in memory
type MockFileStore struct {
	files map[string][]byte
}

func NewMockFileStore() *MockFileStore {
	return &MockFileStore{files: make(map[string][]byte)}
}

func (m *MockFileStore) Store(data []byte, originalName string) (string, error) {
	m.files[originalName] = data
	return "http://files.test/" + originalName, nil
}

func (m *MockFileStore) Open(name string) (string, error) {
	return name, nil
}
