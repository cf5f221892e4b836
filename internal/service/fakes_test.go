package service

import (
	"strings"

	"testbank_backend/internal/model"

	"gorm.io/gorm"
)

// 内存存储，三个仓库 fake 共享，行为对齐 GORM 仓库：
// 未命中返回 gorm.ErrRecordNotFound，名称和题干匹配大小写不敏感。
type fakeDB struct {
	assessments []*model.Assessment
	questions   []*model.Question
	options     []*model.Option
	passages    []*model.Passage
	nextID      uint
}

func newFakeDB() *fakeDB {
	return &fakeDB{nextID: 1}
}

func (db *fakeDB) id() uint {
	id := db.nextID
	db.nextID++
	return id
}

type fakeAssessmentRepo struct{ db *fakeDB }
type fakeQuestionRepo struct{ db *fakeDB }
type fakePassageRepo struct{ db *fakeDB }

func (r *fakeAssessmentRepo) FindByName(name string) (*model.Assessment, error) {
	for _, a := range r.db.assessments {
		if strings.EqualFold(a.Name, name) {
			found := *a
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAssessmentRepo) FindByNameWithRelations(name string) (*model.Assessment, error) {
	for _, a := range r.db.assessments {
		if !strings.EqualFold(a.Name, name) {
			continue
		}
		found := *a
		found.Questions = []model.Question{}
		for _, q := range r.db.questions {
			if q.AssessmentID != a.ID {
				continue
			}
			question := *q
			question.Options = []model.Option{}
			for _, o := range r.db.options {
				if o.QuestionID == q.ID {
					question.Options = append(question.Options, *o)
				}
			}
			found.Questions = append(found.Questions, question)
		}
		for _, p := range r.db.passages {
			if p.AssessmentID == a.ID {
				passage := *p
				found.Passage = &passage
			}
		}
		return &found, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAssessmentRepo) ListNamesByType(assessmentType string) ([]string, error) {
	names := []string{}
	for _, a := range r.db.assessments {
		if a.Type == assessmentType {
			names = append(names, a.Name)
		}
	}
	return names, nil
}

func (r *fakeAssessmentRepo) CreateWithPassage(a *model.Assessment, p *model.Passage) error {
	a.ID = r.db.id()
	r.db.assessments = append(r.db.assessments, a)
	if p != nil {
		p.ID = r.db.id()
		p.AssessmentID = a.ID
		r.db.passages = append(r.db.passages, p)
	}
	return nil
}

func (r *fakeAssessmentRepo) DeleteCascade(a *model.Assessment) error {
	questionIDs := map[uint]bool{}
	kept := r.db.questions[:0]
	for _, q := range r.db.questions {
		if q.AssessmentID == a.ID {
			questionIDs[q.ID] = true
		} else {
			kept = append(kept, q)
		}
	}
	r.db.questions = kept

	keptOptions := r.db.options[:0]
	for _, o := range r.db.options {
		if !questionIDs[o.QuestionID] {
			keptOptions = append(keptOptions, o)
		}
	}
	r.db.options = keptOptions

	keptPassages := r.db.passages[:0]
	for _, p := range r.db.passages {
		if p.AssessmentID != a.ID {
			keptPassages = append(keptPassages, p)
		}
	}
	r.db.passages = keptPassages

	keptAssessments := r.db.assessments[:0]
	for _, stored := range r.db.assessments {
		if stored.ID != a.ID {
			keptAssessments = append(keptAssessments, stored)
		}
	}
	r.db.assessments = keptAssessments
	return nil
}

func (r *fakeQuestionRepo) FindByText(assessmentID uint, text string) (*model.Question, error) {
	for _, q := range r.db.questions {
		if q.AssessmentID == assessmentID && strings.EqualFold(q.Text, text) {
			found := *q
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) CreateWithOptions(q *model.Question, options []model.Option) error {
	q.ID = r.db.id()
	r.db.questions = append(r.db.questions, q)
	for i := range options {
		options[i].ID = r.db.id()
		options[i].QuestionID = q.ID
		option := options[i]
		r.db.options = append(r.db.options, &option)
	}
	return nil
}

func (r *fakeQuestionRepo) DeleteCascade(q *model.Question) error {
	keptOptions := r.db.options[:0]
	for _, o := range r.db.options {
		if o.QuestionID != q.ID {
			keptOptions = append(keptOptions, o)
		}
	}
	r.db.options = keptOptions

	kept := r.db.questions[:0]
	for _, stored := range r.db.questions {
		if stored.ID != q.ID {
			kept = append(kept, stored)
		}
	}
	r.db.questions = kept
	return nil
}

func (r *fakePassageRepo) Create(p *model.Passage) error {
	p.ID = r.db.id()
	r.db.passages = append(r.db.passages, p)
	return nil
}

func (r *fakePassageRepo) FindByAssessmentID(assessmentID uint) (*model.Passage, error) {
	for _, p := range r.db.passages {
		if p.AssessmentID == assessmentID {
			found := *p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newFakeServices() (*AssessmentService, *QuestionService, *PassageService, *fakeDB) {
	db := newFakeDB()
	assessmentRepo := &fakeAssessmentRepo{db: db}
	questionRepo := &fakeQuestionRepo{db: db}
	passageRepo := &fakePassageRepo{db: db}
	return NewAssessmentService(assessmentRepo),
		NewQuestionService(questionRepo, assessmentRepo),
		NewPassageService(passageRepo, assessmentRepo),
		db
}
