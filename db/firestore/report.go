package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	db2 "github.com/classboard/classboard-be/db"
	"github.com/classboard/classboard-be/model"
	"github.com/google/uuid"
)

func (fdb *FirestoreDB) CreateReport(ctx context.Context, req *db2.CreateReport) (*model.Report, error) {
	report := &model.Report{
		Id:           uuid.NewString(),
		TargetKind:   req.TargetKind,
		TargetId:     req.TargetId,
		Reason:       req.Reason,
		ReporterId:   req.Reporter.Id,
		ReporterName: req.Reporter.DisplayName,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := fdb.client.Collection(reportsCollection).Doc(report.Id).Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (fdb *FirestoreDB) GetReports(ctx context.Context) ([]*model.Report, error) {
	snaps, err := fdb.client.Collection(reportsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	reports := make([]*model.Report, len(snaps))
	for i, snap := range snaps {
		var report model.Report
		if err := snap.DataTo(&report); err != nil {
			return nil, err
		}
		reports[i] = &report
	}
	return reports, nil
}
