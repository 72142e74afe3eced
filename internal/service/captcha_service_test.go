package service

import (
	"errors"
	"testing"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
)

func newTestCaptchaService(enabled bool) *CaptchaService {
	return NewCaptchaService(config.CaptchaConfig{
		Enabled: enabled,
		Scenes: config.CaptchaSceneConfig{
			AdminLogin:   true,
			SubmitReview: true,
		},
	})
}

func TestCaptchaVerifySkipsWhenSceneDisabled(t *testing.T) {
	svc := newTestCaptchaService(true)
	if err := svc.Verify(constants.CaptchaSceneCreateOrder, CaptchaVerifyPayload{}); err != nil {
		t.Fatalf("disabled scene should pass, got %v", err)
	}
	disabled := newTestCaptchaService(false)
	if err := disabled.Verify(constants.CaptchaSceneAdminLogin, CaptchaVerifyPayload{}); err != nil {
		t.Fatalf("disabled captcha should pass, got %v", err)
	}
}

func TestCaptchaVerifyRequiresPayload(t *testing.T) {
	svc := newTestCaptchaService(true)
	err := svc.Verify(constants.CaptchaSceneAdminLogin, CaptchaVerifyPayload{})
	if !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("want ErrCaptchaRequired, got %v", err)
	}
}

func TestCaptchaVerifyAnswerIsSingleUse(t *testing.T) {
	svc := newTestCaptchaService(true)
	challenge, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate challenge failed: %v", err)
	}
	if challenge.CaptchaID == "" || challenge.ImageBase64 == "" {
		t.Fatalf("challenge should carry id and image")
	}
	answer := svc.store.Get(challenge.CaptchaID, false)
	if answer == "" {
		t.Fatalf("answer should be stored")
	}

	payload := CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID, CaptchaCode: "wrong"}
	if err := svc.Verify(constants.CaptchaSceneSubmitReview, payload); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("wrong answer should fail, got %v", err)
	}

	second, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate challenge failed: %v", err)
	}
	answer = svc.store.Get(second.CaptchaID, false)
	payload = CaptchaVerifyPayload{CaptchaID: second.CaptchaID, CaptchaCode: answer}
	if err := svc.Verify(constants.CaptchaSceneSubmitReview, payload); err != nil {
		t.Fatalf("correct answer should pass, got %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneSubmitReview, payload); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("answer should be cleared after use, got %v", err)
	}
}

func TestCaptchaGenerateDisabled(t *testing.T) {
	svc := newTestCaptchaService(false)
	if _, err := svc.GenerateImageChallenge(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound when disabled, got %v", err)
	}
}
