// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyhall/ent/lesson"
	"github.com/abhisek/studyhall/ent/qarecord"
	"github.com/abhisek/studyhall/ent/user"
)

// QARecordCreate is the builder for creating a QARecord entity.
type QARecordCreate struct {
	config
	mutation *QARecordMutation
	hooks    []Hook
}

// SetLessonID sets the "lesson_id" field.
func (_c *QARecordCreate) SetLessonID(v int) *QARecordCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QARecordCreate) SetUserID(v int) *QARecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QARecordCreate) SetQuestion(v string) *QARecordCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QARecordCreate) SetAnswer(v string) *QARecordCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *QARecordCreate) SetNillableAnswer(v *string) *QARecordCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetUnanswerable sets the "unanswerable" field.
func (_c *QARecordCreate) SetUnanswerable(v bool) *QARecordCreate {
	_c.mutation.SetUnanswerable(v)
	return _c
}

// SetNillableUnanswerable sets the "unanswerable" field if the given value is not nil.
func (_c *QARecordCreate) SetNillableUnanswerable(v *bool) *QARecordCreate {
	if v != nil {
		_c.SetUnanswerable(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QARecordCreate) SetCreatedAt(v time.Time) *QARecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QARecordCreate) SetNillableCreatedAt(v *time.Time) *QARecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QARecordCreate) SetUpdatedAt(v time.Time) *QARecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QARecordCreate) SetNillableUpdatedAt(v *time.Time) *QARecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_c *QARecordCreate) SetLesson(v *Lesson) *QARecordCreate {
	return _c.SetLessonID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *QARecordCreate) SetUser(v *User) *QARecordCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the QARecordMutation object of the builder.
func (_c *QARecordCreate) Mutation() *QARecordMutation {
	return _c.mutation
}

// Save creates the QARecord in the database.
func (_c *QARecordCreate) Save(ctx context.Context) (*QARecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QARecordCreate) SaveX(ctx context.Context) *QARecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QARecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QARecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QARecordCreate) defaults() {
	if _, ok := _c.mutation.Answer(); !ok {
		v := qarecord.DefaultAnswer
		_c.mutation.SetAnswer(v)
	}
	if _, ok := _c.mutation.Unanswerable(); !ok {
		v := qarecord.DefaultUnanswerable
		_c.mutation.SetUnanswerable(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := qarecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := qarecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QARecordCreate) check() error {
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "QARecord.lesson_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QARecord.user_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QARecord.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := qarecord.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QARecord.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Unanswerable(); !ok {
		return &ValidationError{Name: "unanswerable", err: errors.New(`ent: missing required field "QARecord.unanswerable"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QARecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QARecord.updated_at"`)}
	}
	if len(_c.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required edge "QARecord.lesson"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "QARecord.user"`)}
	}
	return nil
}

func (_c *QARecordCreate) sqlSave(ctx context.Context) (*QARecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QARecordCreate) createSpec() (*QARecord, *sqlgraph.CreateSpec) {
	var (
		_node = &QARecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(qarecord.Table, sqlgraph.NewFieldSpec(qarecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(qarecord.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(qarecord.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Unanswerable(); ok {
		_spec.SetField(qarecord.FieldUnanswerable, field.TypeBool, value)
		_node.Unanswerable = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(qarecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(qarecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   qarecord.LessonTable,
			Columns: []string{qarecord.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LessonID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   qarecord.UserTable,
			Columns: []string{qarecord.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QARecordCreateBulk is the builder for creating many QARecord entities in bulk.
type QARecordCreateBulk struct {
	config
	err      error
	builders []*QARecordCreate
}

// Save creates the QARecord entities in the database.
func (_c *QARecordCreateBulk) Save(ctx context.Context) ([]*QARecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QARecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QARecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QARecordCreateBulk) SaveX(ctx context.Context) []*QARecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QARecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QARecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
