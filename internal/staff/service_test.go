package staff_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wyvernhall/snackcupboard/internal/staff"
)

func archived(t time.Time) *time.Time {
	return &t
}

func TestService_Create(t *testing.T) {
	type args struct {
		params staff.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *staff.MockRepository)
		wantErr   error
		wantFail  bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: staff.CreateParams{Initials: "jd", Surname: "Doe", Forename: "Jane"},
			},
			setupMock: func(m *staff.MockRepository) {
				m.EXPECT().
					GetStaff(gomock.Any(), "JD").
					Return(nil, staff.ErrNotFound)
				m.EXPECT().
					CreateStaff(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, st *staff.Staff) error {
						assert.Equal(t, "JD", st.Initials)
						return nil
					})
			},
		},
		{
			name: "ActiveDuplicate",
			args: args{
				params: staff.CreateParams{Initials: "JD", Surname: "Doe", Forename: "Jane"},
			},
			setupMock: func(m *staff.MockRepository) {
				m.EXPECT().
					GetStaff(gomock.Any(), "JD").
					Return(&staff.Staff{Initials: "JD"}, nil)
			},
			wantErr: staff.ErrDuplicate,
		},
		{
			name: "RestoresArchivedDuplicate",
			args: args{
				params: staff.CreateParams{Initials: "JD", Surname: "Dove", Forename: "June"},
			},
			setupMock: func(m *staff.MockRepository) {
				m.EXPECT().
					GetStaff(gomock.Any(), "JD").
					Return(&staff.Staff{
						Initials:   "JD",
						Surname:    "Doe",
						Forename:   "Jane",
						ArchivedAt: archived(time.Now()),
					}, nil)
				m.EXPECT().
					UpdateStaff(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, st *staff.Staff) error {
						assert.Equal(t, "Dove", st.Surname)
						assert.Equal(t, "June", st.Forename)
						assert.Nil(t, st.ArchivedAt)
						return nil
					})
			},
		},
		{
			name: "MissingFields",
			args: args{
				params: staff.CreateParams{Initials: "JD"},
			},
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := staff.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := staff.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			if tt.wantFail {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Nil(t, got.ArchivedAt)
		})
	}
}

func TestService_HardDelete(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *staff.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "ArchivedMemberIsDeleted",
			setupMock: func(m *staff.MockRepository) {
				m.EXPECT().
					GetStaff(gomock.Any(), "JD").
					Return(&staff.Staff{Initials: "JD", ArchivedAt: archived(time.Now())}, nil)
				m.EXPECT().
					DeleteStaff(gomock.Any(), "JD").
					Return(nil)
			},
		},
		{
			name: "ActiveMemberIsRejected",
			setupMock: func(m *staff.MockRepository) {
				m.EXPECT().
					GetStaff(gomock.Any(), "JD").
					Return(&staff.Staff{Initials: "JD"}, nil)
			},
			wantErr: staff.ErrNotArchived,
		},
		{
			name: "UnknownMember",
			setupMock: func(m *staff.MockRepository) {
				m.EXPECT().
					GetStaff(gomock.Any(), "JD").
					Return(nil, staff.ErrNotFound)
			},
			wantErr: staff.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := staff.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := staff.NewService(repo)
			err := svc.HardDelete(context.Background(), "jd")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Import_Replace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []staff.CreateParams{
		{Initials: "AB", Surname: "Able", Forename: "Anna"},
		{Initials: "CD", Surname: "Cable", Forename: "Carl"},
	}

	itx := staff.NewMockImportTx(ctrl)
	itx.EXPECT().Upsert(gomock.Any(), rows[0]).Return(true, nil)
	itx.EXPECT().Upsert(gomock.Any(), rows[1]).Return(false, nil)
	itx.EXPECT().
		ArchiveAbsent(gomock.Any(), []string{"AB", "CD"}, gomock.Any()).
		Return(int64(3), nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	repo := staff.NewMockRepository(ctrl)
	repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)

	svc := staff.NewService(repo)
	result, err := svc.Import(context.Background(), staff.ModeReplace, rows)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 3, result.Archived)
}

func TestService_Import_Append(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []staff.CreateParams{
		{Initials: "AB", Surname: "Able", Forename: "Anna"},
	}

	// Append mode never archives anybody, so ArchiveAbsent must not be called.
	itx := staff.NewMockImportTx(ctrl)
	itx.EXPECT().Upsert(gomock.Any(), rows[0]).Return(true, nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	repo := staff.NewMockRepository(ctrl)
	repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)

	svc := staff.NewService(repo)
	result, err := svc.Import(context.Background(), staff.ModeAppend, rows)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Archived)
}

func TestService_Import_RollsBackOnUpsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []staff.CreateParams{
		{Initials: "AB", Surname: "Able", Forename: "Anna"},
	}

	itx := staff.NewMockImportTx(ctrl)
	itx.EXPECT().Upsert(gomock.Any(), rows[0]).Return(false, errors.New("db error"))
	itx.EXPECT().Rollback().Return(nil)

	repo := staff.NewMockRepository(ctrl)
	repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)

	svc := staff.NewService(repo)
	result, err := svc.Import(context.Background(), staff.ModeReplace, rows)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_Import_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := staff.NewMockRepository(ctrl)
	svc := staff.NewService(repo)

	_, err := svc.Import(context.Background(), staff.ImportMode("merge"), []staff.CreateParams{
		{Initials: "AB", Surname: "Able", Forename: "Anna"},
	})
	assert.Error(t, err)

	_, err = svc.Import(context.Background(), staff.ModeReplace, nil)
	assert.Error(t, err)

	_, err = svc.Import(context.Background(), staff.ModeReplace, []staff.CreateParams{
		{Initials: "AB"},
	})
	assert.Error(t, err)
}
