// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyhall/ent/lesson"
	"github.com/abhisek/studyhall/ent/predicate"
	"github.com/abhisek/studyhall/ent/qarecord"
	"github.com/abhisek/studyhall/ent/user"
)

// QARecordUpdate is the builder for updating QARecord entities.
type QARecordUpdate struct {
	config
	hooks    []Hook
	mutation *QARecordMutation
}

// Where appends a list predicates to the QARecordUpdate builder.
func (_u *QARecordUpdate) Where(ps ...predicate.QARecord) *QARecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *QARecordUpdate) SetLessonID(v int) *QARecordUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *QARecordUpdate) SetNillableLessonID(v *int) *QARecordUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QARecordUpdate) SetUserID(v int) *QARecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QARecordUpdate) SetNillableUserID(v *int) *QARecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QARecordUpdate) SetQuestion(v string) *QARecordUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QARecordUpdate) SetNillableQuestion(v *string) *QARecordUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QARecordUpdate) SetAnswer(v string) *QARecordUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QARecordUpdate) SetNillableAnswer(v *string) *QARecordUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *QARecordUpdate) ClearAnswer() *QARecordUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetUnanswerable sets the "unanswerable" field.
func (_u *QARecordUpdate) SetUnanswerable(v bool) *QARecordUpdate {
	_u.mutation.SetUnanswerable(v)
	return _u
}

// SetNillableUnanswerable sets the "unanswerable" field if the given value is not nil.
func (_u *QARecordUpdate) SetNillableUnanswerable(v *bool) *QARecordUpdate {
	if v != nil {
		_u.SetUnanswerable(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QARecordUpdate) SetUpdatedAt(v time.Time) *QARecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *QARecordUpdate) SetLesson(v *Lesson) *QARecordUpdate {
	return _u.SetLessonID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *QARecordUpdate) SetUser(v *User) *QARecordUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the QARecordMutation object of the builder.
func (_u *QARecordUpdate) Mutation() *QARecordMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *QARecordUpdate) ClearLesson() *QARecordUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *QARecordUpdate) ClearUser() *QARecordUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QARecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QARecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QARecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QARecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QARecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := qarecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QARecordUpdate) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := qarecord.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QARecord.question": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QARecord.lesson"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QARecord.user"`)
	}
	return nil
}

func (_u *QARecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qarecord.Table, qarecord.Columns, sqlgraph.NewFieldSpec(qarecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(qarecord.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(qarecord.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(qarecord.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Unanswerable(); ok {
		_spec.SetField(qarecord.FieldUnanswerable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(qarecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LessonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qarecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QARecordUpdateOne is the builder for updating a single QARecord entity.
type QARecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QARecordMutation
}

// SetLessonID sets the "lesson_id" field.
func (_u *QARecordUpdateOne) SetLessonID(v int) *QARecordUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *QARecordUpdateOne) SetNillableLessonID(v *int) *QARecordUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QARecordUpdateOne) SetUserID(v int) *QARecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QARecordUpdateOne) SetNillableUserID(v *int) *QARecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QARecordUpdateOne) SetQuestion(v string) *QARecordUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QARecordUpdateOne) SetNillableQuestion(v *string) *QARecordUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QARecordUpdateOne) SetAnswer(v string) *QARecordUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QARecordUpdateOne) SetNillableAnswer(v *string) *QARecordUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *QARecordUpdateOne) ClearAnswer() *QARecordUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetUnanswerable sets the "unanswerable" field.
func (_u *QARecordUpdateOne) SetUnanswerable(v bool) *QARecordUpdateOne {
	_u.mutation.SetUnanswerable(v)
	return _u
}

// SetNillableUnanswerable sets the "unanswerable" field if the given value is not nil.
func (_u *QARecordUpdateOne) SetNillableUnanswerable(v *bool) *QARecordUpdateOne {
	if v != nil {
		_u.SetUnanswerable(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QARecordUpdateOne) SetUpdatedAt(v time.Time) *QARecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *QARecordUpdateOne) SetLesson(v *Lesson) *QARecordUpdateOne {
	return _u.SetLessonID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *QARecordUpdateOne) SetUser(v *User) *QARecordUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the QARecordMutation object of the builder.
func (_u *QARecordUpdateOne) Mutation() *QARecordMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *QARecordUpdateOne) ClearLesson() *QARecordUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *QARecordUpdateOne) ClearUser() *QARecordUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the QARecordUpdate builder.
func (_u *QARecordUpdateOne) Where(ps ...predicate.QARecord) *QARecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QARecordUpdateOne) Select(field string, fields ...string) *QARecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QARecord entity.
func (_u *QARecordUpdateOne) Save(ctx context.Context) (*QARecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QARecordUpdateOne) SaveX(ctx context.Context) *QARecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QARecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QARecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QARecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := qarecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QARecordUpdateOne) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := qarecord.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QARecord.question": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QARecord.lesson"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QARecord.user"`)
	}
	return nil
}

func (_u *QARecordUpdateOne) sqlSave(ctx context.Context) (_node *QARecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qarecord.Table, qarecord.Columns, sqlgraph.NewFieldSpec(qarecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QARecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, qarecord.FieldID)
		for _, f := range fields {
			if !qarecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != qarecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(qarecord.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(qarecord.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(qarecord.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Unanswerable(); ok {
		_spec.SetField(qarecord.FieldUnanswerable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(qarecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LessonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QARecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qarecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
