// Package ofx parses OFX/QFX bank statement exports into bank entries.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/google/uuid"

	"github.com/quillfin/ledgermatch/internal/common"
	"github.com/quillfin/ledgermatch/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	severityRe = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRe  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting issues in bank-exported OFX files:
// leading whitespace before the header, mixed-case SEVERITY values, and
// SGML-style tags missing their closing angle bracket.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRe.ReplaceAllStringFunc(content, strings.ToUpper)
	content = openTagRe.ReplaceAllString(content, "$1>")
	return content
}

// ParseFile parses an OFX/QFX statement and returns its bank entries.
// Amounts keep their sign: positive is money in, negative money out.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.BankEntry, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnparseableStatement, err)
	}

	var entries []model.BankEntry
	var statements int

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		statements++
		for _, ofxTx := range stmt.BankTranList.Transactions {
			entry := convertTransaction(ofxTx)
			if entry.Amount == 0 {
				slog.Warn("Skipping zero-amount statement line", "description", entry.Description)
				continue
			}
			entries = append(entries, entry)
		}
	}

	slog.Info("Parsed OFX file",
		"total_entries", len(entries),
		"statements", statements)

	return entries, nil
}

// convertTransaction converts an OFX transaction to a bank entry. Statement
// lines without a FITID get a generated id so re-imports stay idempotent
// for well-formed files and merely harmless for malformed ones.
func convertTransaction(ofxTx ofxgo.Transaction) model.BankEntry {
	amount, _ := ofxTx.TrnAmt.Float64()

	id := string(ofxTx.FiTID)
	if id == "" {
		id = uuid.NewString()
	}

	description := strings.TrimSpace(string(ofxTx.Name))
	if memo := strings.TrimSpace(string(ofxTx.Memo)); memo != "" {
		if description == "" {
			description = memo
		} else if !strings.EqualFold(description, memo) {
			description += " " + memo
		}
	}
	if ofxTx.Payee != nil && ofxTx.Payee.Name != "" {
		description = strings.TrimSpace(string(ofxTx.Payee.Name) + " " + description)
	}

	reference := string(ofxTx.RefNum)
	if reference == "" {
		reference = string(ofxTx.CheckNum)
	}

	return model.BankEntry{
		ID:          id,
		Date:        ofxTx.DtPosted.Time,
		Amount:      amount,
		Description: description,
		Reference:   reference,
		Status:      model.EntryStatusImported,
	}
}
