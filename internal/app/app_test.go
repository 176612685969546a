package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"beagle/internal/app/cli"
	"beagle/internal/config/logger"
)

// mockLifecycle implements fx.Lifecycle for testing
type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

// mockShutdowner records the options passed to Shutdown
type mockShutdowner struct {
	calls   int
	options []fx.ShutdownOption
	err     error
}

func (m *mockShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	m.calls++
	m.options = opts

	return m.err
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	application := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	assert.NotNil(t, application)
	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, mockLogger, application.log)
}

func Test_execute(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	app := &App{
		cli: mockCLI,
		log: mockLogger,
	}

	tests := []struct {
		name         string
		before       func()
		expectedCode int
	}{
		{
			name: "Success",
			before: func() {
				mockCLI.EXPECT().Execute().Return(0, nil)
			},
			expectedCode: 0,
		},
		{
			name: "Failure",
			before: func() {
				mockCLI.EXPECT().Execute().Return(1, errors.New("no input"))
				mockLogger.EXPECT().Debug().Return(nil)
			},
			expectedCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.before()
			assert.Equal(t, tt.expectedCode, app.execute())
		})
	}
}

func Test_App_Run(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	t.Run("Shuts down with the exit code", func(t *testing.T) {
		shutdowner := &mockShutdowner{}
		app := NewApp(mockCLI, shutdowner, mockLogger)

		mockCLI.EXPECT().Execute().Return(0, nil)

		app.Run()

		assert.Equal(t, 1, shutdowner.calls)
		assert.Equal(t, []fx.ShutdownOption{fx.ExitCode(0)}, shutdowner.options)

		select {
		case <-app.done:
		default:
			t.Fatal("done channel not closed")
		}
	})

	t.Run("Logs a failed shutdown", func(t *testing.T) {
		shutdowner := &mockShutdowner{err: errors.New("already stopping")}
		app := NewApp(mockCLI, shutdowner, mockLogger)

		mockCLI.EXPECT().Execute().Return(0, nil)
		mockLogger.EXPECT().Error().Return(nil)

		app.Run()

		assert.Equal(t, 1, shutdowner.calls)
	})
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	app := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	var registered bool
	var capturedHook fx.Hook

	testLifecycle := &mockLifecycle{
		onAppend: func(hook fx.Hook) {
			registered = true
			capturedHook = hook
		},
	}

	Register(testLifecycle, app)

	assert.True(t, registered)
	assert.NotNil(t, capturedHook.OnStart)
	assert.NotNil(t, capturedHook.OnStop)
}

func Test_Register_Hooks(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	shutdowner := &mockShutdowner{}
	app := NewApp(mockCLI, shutdowner, mockLogger)

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

	t.Run("OnStop times out while the command runs", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := capturedHook.OnStop(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("OnStart runs the command and OnStop waits for it", func(t *testing.T) {
		mockCLI.EXPECT().Execute().Return(0, nil)

		require.NoError(t, capturedHook.OnStart(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		assert.NoError(t, capturedHook.OnStop(ctx))
	})
}
