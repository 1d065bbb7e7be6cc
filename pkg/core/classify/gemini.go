package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"google.golang.org/genai"

	"github.com/NIgan1989/finsights-engine/pkg/models"
)

const classifySystemPrompt = `You are a bank transaction classifier for small-business financial statements.
For each transaction, assign:
- "category": one of the allowed category strings, exactly as listed
- "transactionType": "operating", "investing" or "financing"
- "isCapitalized": true only for expenses that acquire long-lived assets
Respond with a JSON array of {"id","category","transactionType","isCapitalized"} objects, one per input, same order. No prose.`

// GeminiClassifier classifies transactions with a Gemini model. Output is
// repaired before unmarshal because models occasionally wrap JSON in
// markdown fences or drop quotes.
type GeminiClassifier struct {
	Model string // e.g. "gemini-2.0-flash-exp"
}

var _ Classifier = (*GeminiClassifier)(nil)

// Classify sends the batch to the Gemini API and parses the verdicts.
func (c *GeminiClassifier) Classify(ctx context.Context, reqs []Request) ([]Result, error) {
	if len(reqs) == 0 {
		return []Result{}, nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	model := c.Model
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: classifySystemPrompt + "\n\nAllowed categories:\n" + allowedCategories()}},
		},
	}

	payload, err := json.Marshal(reqs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classification batch: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(string(payload)), config)
	if err != nil {
		return nil, fmt.Errorf("classification request failed: %w", err)
	}

	return parseVerdicts(resp.Text(), reqs)
}

// parseVerdicts repairs and unmarshals the model output, then pads any
// missing verdicts with the deterministic fallback so the engine always
// receives one result per request.
func parseVerdicts(raw string, reqs []Request) ([]Result, error) {
	repaired, err := jsonrepair.RepairJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to repair classifier output: %w", err)
	}

	var verdicts []Result
	if err := json.Unmarshal([]byte(repaired), &verdicts); err != nil {
		return nil, fmt.Errorf("failed to parse classifier output: %w", err)
	}

	byID := make(map[string]Result, len(verdicts))
	for _, v := range verdicts {
		byID[v.ID] = v
	}

	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		if v, ok := byID[req.ID]; ok {
			v.IsCapitalized = v.IsCapitalized && req.Type == models.TxExpense
			results = append(results, v)
			continue
		}
		results = append(results, fallback(req))
	}
	return results, nil
}

func allowedCategories() string {
	expense := []models.Category{
		models.CatPurchasedGoods, models.CatRawMaterials, models.CatProductionWages,
		models.CatProductionRent, models.CatProductionServices, models.CatMarketing,
		models.CatSalesCommissions, models.CatLogistics, models.CatAdminWages,
		models.CatOfficeRent, models.CatUtilities, models.CatCommunications,
		models.CatOfficeSupplies, models.CatConsultingAudit, models.CatInsurance,
		models.CatHospitality, models.CatTravel, models.CatTraining,
		models.CatSoftwareSubs, models.CatOtherTaxes, models.CatBankFees,
		models.CatFines, models.CatLoanInterest, models.CatNegativeFX,
		models.CatEquipment, models.CatVehicles, models.CatRealEstate,
		models.CatIntangibles, models.CatAssetUpgrades, models.CatLoanRepayment,
		models.CatLeasePayments, models.CatDividendsPaid, models.CatEquityBuyback,
		models.CatSavingsTransfer, models.CatPersonalWithdrawal, models.CatOther,
	}
	income := []models.Category{
		models.CatCoreRevenue, models.CatAncillaryServices, models.CatCommissionIncome,
		models.CatRentalIncome, models.CatRoyalties, models.CatInterestIncome,
		models.CatPositiveFX, models.CatDividendsReceived, models.CatAssetSaleProceeds,
		models.CatLoanProceeds, models.CatOwnerContribution, models.CatOtherIncome,
	}

	var b strings.Builder
	b.WriteString("expense: ")
	for i, c := range expense {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(c))
	}
	b.WriteString("\nincome: ")
	for i, c := range income {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(c))
	}
	return b.String()
}
