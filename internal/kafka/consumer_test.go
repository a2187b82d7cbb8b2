package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/dogbreeds/internal/domain"
	"github.com/Gunvolt24/dogbreeds/internal/kafka/mocks"
	"github.com/Gunvolt24/dogbreeds/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// runAsync запускает Consumer.Run в отдельном горутине и возвращает канал с ошибкой.
func runAsync(ctx context.Context, c *Consumer) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()
	return errCh
}

func newTestConsumer(r reader, s breedLookup) *Consumer {
	return &Consumer{
		reader: r, lookup: s, validator: validate.NewBreedValidator(), log: nopLogger{},
		processTimeout: 30 * time.Millisecond,
		retryInitial:   5 * time.Millisecond,
		retryMax:       10 * time.Millisecond,
		jitterRand:     rand.New(rand.NewSource(1)),
	}
}

// Успешная обработка + коммит
func TestRun_OK_Commits(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockbreedLookup(ctrl)

	rc := kafka.ReaderConfig{Topic: "breed-lookups", GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()
	// 1-й цикл: сообщение обрабатывается
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Offset: 1, Value: []byte("Hound")}, nil)
	s.EXPECT().Lookup(gomock.Any(), domain.BreedOf("Hound")).Return([]string{"afghan"}, nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
	// 2-й fetch блокируется до отмены контекста
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})

	c := newTestConsumer(r, s)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, c)

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

// Порода не найдена => тоже коммитим (повтор ничего не даст)
func TestRun_NotFound_Commits(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockbreedLookup(ctrl)

	rc := kafka.ReaderConfig{Topic: "breed-lookups", GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	// 1-й цикл: получили сообщение, поиск вернул domain.ErrBreedNotFound, выполняем CommitMessages
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Offset: 7, Value: []byte("ghostbreed")}, nil)
	s.EXPECT().Lookup(gomock.Any(), domain.BreedOf("ghostbreed")).Return(nil, domain.ErrBreedNotFound)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)

	// 2-й fetch будет ждать отмены
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})

	c := newTestConsumer(r, s)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, c)

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

// Прочая ошибка поиска => НЕ коммитим
func TestRun_TemporaryFailure_NoCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockbreedLookup(ctrl)

	rc := kafka.ReaderConfig{Topic: "breed-lookups", GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	// 1-й цикл: получили сообщение, поиск упал "временной" ошибкой -> CommitMessages НЕ вызывается
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Offset: 2, Value: []byte("akita")}, nil)
	s.EXPECT().Lookup(gomock.Any(), domain.BreedOf("akita")).Return(nil, errors.New("upstream down"))
	// Никаких r.EXPECT().CommitMessages(...) специально НЕ ставим:
	// если Consumer по ошибке его вызовет — тест упадёт как "unexpected call".

	// 2-й fetch блокируется до отмены
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})

	c := newTestConsumer(r, s)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, c)

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

// Ошибки FetchMessage ретраятся; по отмене контекста — корректный выход
func TestRun_FetchError_RetryThenStopOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockbreedLookup(ctrl)

	rc := kafka.ReaderConfig{Topic: "breed-lookups", GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	// Всегда возвращаем ошибку брокера; Consumer будет ждать по backoff и ретраить,
	// пока не отменится контекст
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(_ context.Context) (kafka.Message, error) {
			return kafka.Message{}, errors.New("broker error")
		}).AnyTimes()

	c := newTestConsumer(r, s)

	// Короткий таймаут, чтобы быстро выйти
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	if err := c.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

// CommitMessages вернул ошибку — получаем предупреждение; цикл живёт дальше
func TestRun_CommitWarnOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockbreedLookup(ctrl)

	rc := kafka.ReaderConfig{Topic: "breed-lookups", GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	// 1-й цикл: поиск работает, но CommitMessages возвращает ошибку — не должен падать
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Offset: 3, Value: []byte("pug")}, nil)
	s.EXPECT().Lookup(gomock.Any(), domain.BreedOf("pug")).Return([]string{}, nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("temporary"))

	// 2-й fetch блокируется до отмены
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})

	c := newTestConsumer(r, s)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, c)

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

// Проверка Close() прокидывает вызов в reader.Close()
func TestClose_DelegatesToReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockbreedLookup(ctrl)

	// Close должен быть вызван и вернуть nil
	r.EXPECT().Close().Return(nil)

	c := newTestConsumer(r, s)
	if err := c.Close(); err != nil {
		t.Fatalf("expected nil from Close, got %v", err)
	}
}

// Невалидное имя => Lookup не вызывается, оффсет коммитится
func TestRun_InvalidName_SkippedAndCommitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockbreedLookup(ctrl)

	rc := kafka.ReaderConfig{Topic: "breed-lookups", GroupID: "g1", Brokers: []string{"b:9092"}}
	r.EXPECT().Config().Return(rc).AnyTimes()

	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Offset: 4, Value: []byte("{\"order\":1}")}, nil)
	s.EXPECT().Lookup(gomock.Any(), gomock.Any()).Times(0)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)

	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})

	c := newTestConsumer(r, s)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, c)

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

func TestBreedFromMessage(t *testing.T) {
	if got := breedFromMessage(&kafka.Message{}); got != domain.AbsentBreed() {
		t.Fatalf("nil value must be the absent breed, got %+v", got)
	}
	if got := breedFromMessage(&kafka.Message{Value: []byte(" Akita ")}); got != domain.BreedOf(" Akita ") {
		t.Fatalf("value must be passed as is, got %+v", got)
	}
}

// Сообщение без значения доходит до поиска как отсутствующее имя (валидатор не применяется)
func TestHandleMessage_NilValue_LooksUpAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockbreedLookup(ctrl)

	s.EXPECT().Lookup(gomock.Any(), domain.AbsentBreed()).Return(nil, domain.ErrBreedNotFound)

	c := newTestConsumer(r, s)
	if commit := c.handleMessage(context.Background(), "breed-lookups", &kafka.Message{Offset: 9}); !commit {
		t.Fatalf("not found must be committed")
	}
}

// Истёк таймаут обработки: ошибка поиска оборачивает и NotFound, и ctx.Err() — оффсет не коммитим
func TestHandleMessage_LookupTimeout_NoCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockbreedLookup(ctrl)

	s.EXPECT().Lookup(gomock.Any(), domain.BreedOf("beagle")).
		DoAndReturn(func(ctx context.Context, b domain.Breed) ([]string, error) {
			<-ctx.Done()
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrBreedNotFound, b, ctx.Err())
		})

	c := newTestConsumer(r, s)
	if commit := c.handleMessage(context.Background(), "breed-lookups", &kafka.Message{Offset: 11, Value: []byte("beagle")}); commit {
		t.Fatalf("timed out lookup must not be committed")
	}
}

func TestNextBackoff_CappedByRetryMax(t *testing.T) {
	c := newTestConsumer(nil, nil)

	if got := c.nextBackoff(5 * time.Millisecond); got != 10*time.Millisecond {
		t.Fatalf("nextBackoff(5ms) = %v, want 10ms", got)
	}
	if got := c.nextBackoff(8 * time.Millisecond); got != 10*time.Millisecond {
		t.Fatalf("nextBackoff(8ms) = %v, want cap 10ms", got)
	}
}

func TestWithJitterEqual_Bounds(t *testing.T) {
	c := newTestConsumer(nil, nil)

	for i := 0; i < 100; i++ {
		got := c.withJitterEqual(100 * time.Millisecond)
		if got < 50*time.Millisecond || got > 100*time.Millisecond {
			t.Fatalf("withJitterEqual(100ms) = %v, want within [50ms, 100ms]", got)
		}
	}
	if got := c.withJitterEqual(0); got != 0 {
		t.Fatalf("withJitterEqual(0) = %v, want 0", got)
	}
}
