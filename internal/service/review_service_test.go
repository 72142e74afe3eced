package service

import (
	"errors"
	"testing"

	"github.com/bazaar-next/internal/repository"
)

func newReviewTestService(t *testing.T) (*ReviewService, *storeFixture) {
	t.Helper()
	f := newStoreFixture(t)
	svc := NewReviewService(
		repository.NewReviewRepository(f.db),
		repository.NewQuestionRepository(f.db),
		repository.NewProductRepository(f.db),
	)
	return svc, f
}

func TestReviewModerationFlow(t *testing.T) {
	svc, f := newReviewTestService(t)
	f.createProduct(t, "panjabi", "750", true)

	if _, err := svc.SubmitReview(SubmitReviewInput{ProductSlug: "panjabi", Name: "Karim", Rating: 6, Comment: "wow"}); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}
	if _, err := svc.SubmitReview(SubmitReviewInput{ProductSlug: "missing", Name: "Karim", Rating: 5, Comment: "wow"}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	review, err := svc.SubmitReview(SubmitReviewInput{ProductSlug: "panjabi", Name: "Karim", Email: "K@x.com", Rating: 4, Comment: "Nice fabric"})
	if err != nil {
		t.Fatalf("submit review failed: %v", err)
	}
	if review.IsApproved {
		t.Fatalf("new review should wait for approval")
	}

	_, total, err := svc.ListApprovedReviews("panjabi", 1, 20)
	if err != nil {
		t.Fatalf("list approved failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("pending review should be hidden, got %d", total)
	}
	if _, err := svc.SetReviewApproved(review.ID, true); err != nil {
		t.Fatalf("approve review failed: %v", err)
	}
	items, total, err := svc.ListApprovedReviews("panjabi", 1, 20)
	if err != nil {
		t.Fatalf("list approved failed: %v", err)
	}
	if total != 1 || items[0].Rating != 4 {
		t.Fatalf("unexpected approved reviews: %+v", items)
	}
}

func TestQuestionAnswerPublishes(t *testing.T) {
	svc, f := newReviewTestService(t)
	f.createProduct(t, "saree", "4500", true)

	question, err := svc.SubmitQuestion(SubmitQuestionInput{ProductSlug: "saree", Name: "Nusrat", Body: "Is this pure silk?"})
	if err != nil {
		t.Fatalf("submit question failed: %v", err)
	}
	if question.IsPublished {
		t.Fatalf("new question should be unpublished")
	}
	if _, err := svc.AnswerQuestion(question.ID, 1, "  ", true); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank answer, got %v", err)
	}
	answered, err := svc.AnswerQuestion(question.ID, 1, "Yes, 100% Rajshahi silk.", true)
	if err != nil {
		t.Fatalf("answer question failed: %v", err)
	}
	if !answered.IsPublished || len(answered.Answers) != 1 {
		t.Fatalf("answered question should be published with answer: %+v", answered)
	}
	published, total, err := svc.ListPublishedQuestions("saree", 1, 20)
	if err != nil {
		t.Fatalf("list published failed: %v", err)
	}
	if total != 1 || published[0].Answers[0].Body != "Yes, 100% Rajshahi silk." {
		t.Fatalf("unexpected published questions: %+v", published)
	}
}
