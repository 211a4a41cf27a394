package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/repository"
)

// ClassificationRepository implements repository.Classification
type ClassificationRepository struct {
	db *pgxpool.Pool
}

// NewClassificationRepository creates a new ClassificationRepository
func NewClassificationRepository(db *pgxpool.Pool) *ClassificationRepository {
	return &ClassificationRepository{db: db}
}

// GetClassification loads a classification by id
func (r *ClassificationRepository) GetClassification(ctx context.Context, id int64) (*domain.Classification, error) {
	return getClassification(ctx, r.db, SQLSelectClassification, id)
}

// ListClassifications returns classifications matching the filter, newest first
func (r *ClassificationRepository) ListClassifications(ctx context.Context, filter domain.ClassificationFilter) ([]domain.Classification, error) {
	rows, err := r.db.Query(ctx, SQLListClassifications, filter.Author, filter.ClassificationType, filter.AnomalyID, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListClassificationsFailed, err)
	}
	defer rows.Close()

	var out []domain.Classification
	for rows.Next() {
		c, err := scanClassification(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgListClassificationsFailed, err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListClassificationsFailed, err)
	}
	return out, nil
}

// AddComment inserts a comment and returns it with its generated id and timestamp
func (r *ClassificationRepository) AddComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	uid, err := parseUserUUID(comment.Author)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRow(ctx, SQLInsertComment, uid, comment.ClassificationID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCommentFailed, err)
	}
	return &comment, nil
}

// ListComments returns a classification's comments, oldest first
func (r *ClassificationRepository) ListComments(ctx context.Context, classificationID int64) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, SQLListComments, classificationID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCommentFailed, err)
	}
	defer rows.Close()

	var out []domain.Comment
	for rows.Next() {
		var (
			c      domain.Comment
			author uuid.UUID
		)
		if err := rows.Scan(&c.ID, &author, &c.ClassificationID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf(ErrMsgCommentFailed, err)
		}
		c.Author = author.String()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgCommentFailed, err)
	}
	return out, nil
}

// BeginTx starts the transaction a submission or vote runs in
func (r *ClassificationRepository) BeginTx(ctx context.Context) (repository.ClassificationTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	return &classificationTx{tx: tx}, nil
}

// classificationTx implements repository.ClassificationTx on a single pgx.Tx
type classificationTx struct {
	tx pgx.Tx
}

func (t *classificationTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *classificationTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func ledgerKey(author, requestID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := parseUserUUID(author)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	rid, err := uuid.Parse(requestID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: invalid request id: %v", domain.ErrInvalidInput, err)
	}
	return uid, rid, nil
}

// selectSubmission reads a ledger row. A row without a classification belongs to a claim
// that has not committed yet, which callers see as domain.ErrDuplicateRequest.
func selectSubmission(ctx context.Context, q querier, uid, rid uuid.UUID) (int64, bool, error) {
	var id *int64
	err := q.QueryRow(ctx, SQLSelectSubmission, uid, rid).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf(ErrMsgSubmissionLedgerFailed, err)
	}
	if id == nil {
		return 0, false, domain.ErrDuplicateRequest
	}
	return *id, true, nil
}

// GetSubmission reports the classification recorded for a request id
func (r *ClassificationRepository) GetSubmission(ctx context.Context, author, requestID string) (int64, bool, error) {
	uid, rid, err := ledgerKey(author, requestID)
	if err != nil {
		return 0, false, err
	}
	id, found, err := selectSubmission(ctx, r.db, uid, rid)
	if errors.Is(err, domain.ErrDuplicateRequest) {
		// Claimed by a submit still in flight
		return 0, false, nil
	}
	return id, found, err
}

func (t *classificationTx) ClaimSubmission(ctx context.Context, author, requestID string) (int64, bool, error) {
	uid, rid, err := ledgerKey(author, requestID)
	if err != nil {
		return 0, false, err
	}
	tag, err := t.tx.Exec(ctx, SQLClaimSubmission, uid, rid)
	if err != nil {
		return 0, false, fmt.Errorf(ErrMsgSubmissionLedgerFailed, err)
	}
	if tag.RowsAffected() == 1 {
		return 0, true, nil
	}
	id, found, err := selectSubmission(ctx, t.tx, uid, rid)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return 0, false, domain.ErrDuplicateRequest
	}
	return id, false, nil
}

func (t *classificationTx) CompleteSubmission(ctx context.Context, author, requestID string, classificationID int64) error {
	uid, rid, err := ledgerKey(author, requestID)
	if err != nil {
		return err
	}
	if _, err := t.tx.Exec(ctx, SQLCompleteSubmission, uid, rid, classificationID); err != nil {
		return fmt.Errorf(ErrMsgSubmissionLedgerFailed, err)
	}
	return nil
}

func (t *classificationTx) GetStructureForUpdate(ctx context.Context, userID string, itemID int, anomalyID int64) (*domain.InventoryItem, error) {
	return getStructure(ctx, t.tx, SQLSelectStructureForUpdate, userID, itemID, anomalyID)
}

func (t *classificationTx) UpdateStructureConfiguration(ctx context.Context, inventoryID int64, cfg domain.InventoryConfiguration, expectedVersion int) error {
	return updateStructureConfiguration(ctx, t.tx, inventoryID, cfg, expectedVersion)
}

func (t *classificationTx) GetLinkedAnomaly(ctx context.Context, author string, anomalyID int64) (*domain.LinkedAnomaly, error) {
	uid, err := parseUserUUID(author)
	if err != nil {
		return nil, err
	}
	var (
		link  domain.LinkedAnomaly
		owner uuid.UUID
	)
	err = t.tx.QueryRow(ctx, SQLSelectLinkedAnomaly, uid, anomalyID).
		Scan(&link.ID, &owner, &link.AnomalyID, &link.ClassificationID, &link.Automaton, &link.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLinkedAnomalyFailed, err)
	}
	link.Author = owner.String()
	return &link, nil
}

func (t *classificationTx) DeleteLinkedAnomalies(ctx context.Context, author string, anomalyID int64) error {
	uid, err := parseUserUUID(author)
	if err != nil {
		return err
	}
	if _, err := t.tx.Exec(ctx, SQLDeleteLinkedAnomalies, uid, anomalyID); err != nil {
		return fmt.Errorf(ErrMsgLinkedAnomalyFailed, err)
	}
	return nil
}

func (t *classificationTx) InsertClassification(ctx context.Context, c domain.Classification) (int64, error) {
	uid, err := parseUserUUID(c.Author)
	if err != nil {
		return 0, err
	}
	media := c.Media
	if media == nil {
		media = []string{}
	}
	rawMedia, err := json.Marshal(media)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgEncodeConfigFailed, err)
	}
	rawCfg, err := json.Marshal(c.Configuration)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgEncodeConfigFailed, err)
	}
	var id int64
	err = t.tx.QueryRow(ctx, SQLInsertClassification,
		uid, c.AnomalyID, c.Content, rawMedia, c.ClassificationType, rawCfg, c.ClassificationParent,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInsertClassificationFailed, err)
	}
	return id, nil
}

func (t *classificationTx) AddClassificationPoints(ctx context.Context, userID string, points int) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	if _, err := t.tx.Exec(ctx, SQLAddClassificationPoints, uid, points); err != nil {
		return fmt.Errorf(ErrMsgAddPointsFailed, err)
	}
	return nil
}

func (t *classificationTx) InsertMissionIfAbsent(ctx context.Context, userID string, missionID int64) (bool, error) {
	return insertMissionIfAbsent(ctx, t.tx, userID, missionID)
}

func (t *classificationTx) InsertVote(ctx context.Context, vote domain.Vote) (bool, error) {
	uid, err := parseUserUUID(vote.UserID)
	if err != nil {
		return false, err
	}
	voteType := vote.VoteType
	if voteType == "" {
		voteType = domain.VoteTypeUp
	}
	tag, err := t.tx.Exec(ctx, SQLInsertVote, uid, vote.ClassificationID, vote.AnomalyID, voteType)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf(ErrMsgVoteFailed, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *classificationTx) GetClassificationForUpdate(ctx context.Context, id int64) (*domain.Classification, error) {
	return getClassification(ctx, t.tx, SQLSelectClassificationForUpdate, id)
}

func (t *classificationTx) UpdateClassificationConfiguration(ctx context.Context, id int64, cfg domain.ClassificationConfiguration) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeConfigFailed, err)
	}
	if _, err := t.tx.Exec(ctx, SQLUpdateClassificationConfig, id, raw); err != nil {
		return fmt.Errorf(ErrMsgUpdateClassificationFailed, err)
	}
	return nil
}
