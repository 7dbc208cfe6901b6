package httpapi

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) listLessons(c *fiber.Ctx) error {
	lessons, err := s.lessons.List(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]lessonResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, toLessonResponse(l))
	}
	return c.JSON(fiber.Map{"lessons": out})
}

func (s *Server) getLesson(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	lesson, err := s.lessons.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toLessonDetailResponse(lesson))
}

func (s *Server) createLesson(c *fiber.Ctx) error {
	var req createLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	lesson, err := s.lessons.Create(c.UserContext(), req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toLessonDetailResponse(lesson))
}

func (s *Server) answer(c *fiber.Ctx) error {
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	outcome, err := s.qa.Answer(c.UserContext(), identityFrom(c), req.LessonID, req.Question)
	if err != nil {
		return err
	}

	rec := outcome.Record
	return c.JSON(answerResponse{
		RecordID:     rec.ID,
		LessonID:     rec.LessonID,
		Question:     rec.Question,
		Answer:       rec.Answer,
		Unanswerable: outcome.Unanswerable,
		Reason:       outcome.Reason,
		CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (s *Server) lessonHistory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	records, err := s.qa.History(c.UserContext(), identityFrom(c), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"history": toHistoryResponse(records)})
}

func (s *Server) recommendLessons(c *fiber.Ctx) error {
	scores, err := s.rec.Recommend(c.UserContext(), identityFrom(c).UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"recommendations": toRecommendationResponse(scores)})
}

func pathID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}
