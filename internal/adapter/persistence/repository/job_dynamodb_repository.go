package repository

import (
	"context"
	"errors"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName       = "jobs"
	defaultPurgeAuditTableName = "purge_audit"

	// atomicUpdateAttempts bounds the internal optimistic retry loop before
	// the conflict is surfaced to the caller.
	atomicUpdateAttempts = 3
)

// JobDynamoRepository persists the Job aggregate in DynamoDB.
//
// Table requirements:
//   - jobs: PK booking_id (string). The whole aggregate (charges, history,
//     assignments) is one item so a conditional write on `version` yields an
//     atomic read-modify-write with no lost updates.
//   - purge_audit: PK booking_id (string). Tombstones for purged jobs.

type JobDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	purgeAuditTable string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("JOBS_TABLE", defaultJobsTableName),
		purgeAuditTable: getenvDefault("PURGE_AUDIT_TABLE", defaultPurgeAuditTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, job *entities.Job) (*entities.Job, error) {
	stored := job.Clone()
	stored.Version = 1

	av, err := attributevalue.MarshalMap(toJobItem(stored))
	if err != nil {
		return nil, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "booking_id",
		},
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, bookingID string) (*entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromJobItem(it), nil
}

// AtomicUpdate reads the job, applies mutate and writes back conditioned on
// the version it read. Losing the condition means a concurrent writer won;
// the read-mutate-write is retried on a fresh version a bounded number of
// times and then reported as a conflict with nothing written.
func (r *JobDynamoRepository) AtomicUpdate(ctx context.Context, bookingID string, mutate func(*entities.Job) error) (*entities.Job, error) {
	for attempt := 0; attempt < atomicUpdateAttempts; attempt++ {
		job, err := r.GetByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, nil
		}

		expectedVersion := job.Version
		if err := mutate(job); err != nil {
			return nil, err
		}
		job.Version = expectedVersion + 1
		job.UpdatedAt = time.Now().UTC()

		av, err := attributevalue.MarshalMap(toJobItem(job))
		if err != nil {
			return nil, err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("#version = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
			},
		})
		if err == nil {
			return job, nil
		}

		var condFailed *types.ConditionalCheckFailedException
		if !errors.As(err, &condFailed) {
			return nil, err
		}
	}
	return nil, interfaces.ErrVersionConflict
}

func (r *JobDynamoRepository) ListPayoutPending(ctx context.Context) ([]*entities.Job, error) {
	var jobs []*entities.Job
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("attribute_exists(#s.approved_amount_cents) AND attribute_not_exists(#s.paid_at)"),
			ExpressionAttributeNames: map[string]string{
				"#s": "supplier",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it jobItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			jobs = append(jobs, fromJobItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return jobs, nil
}

// Purge writes the tombstone first, then deletes the aggregate. A crash
// between the two leaves an audit record pointing at a job that still exists,
// which is recoverable; the reverse order would not be.
func (r *JobDynamoRepository) Purge(ctx context.Context, bookingID string, record entities.PurgeRecord) error {
	av, err := attributevalue.MarshalMap(toPurgeItem(record))
	if err != nil {
		return err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.purgeAuditTable),
		Item:      av,
	}); err != nil {
		return err
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	return err
}
