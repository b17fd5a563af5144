package repository

import (
	"context"
	"strconv"
	"time"

	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultListingsTableName = "listings"

type listingItem struct {
	ID            string   `dynamodbav:"id"`
	Title         string   `dynamodbav:"title"`
	Make          string   `dynamodbav:"make"`
	Model         string   `dynamodbav:"model"`
	Year          int      `dynamodbav:"year"`
	Trim          string   `dynamodbav:"trim,omitempty"`
	BodyType      string   `dynamodbav:"body_type,omitempty"`
	Mileage       int      `dynamodbav:"mileage"`
	VIN           string   `dynamodbav:"vin,omitempty"`
	ExteriorColor string   `dynamodbav:"exterior_color,omitempty"`
	InteriorColor string   `dynamodbav:"interior_color,omitempty"`
	FuelType      string   `dynamodbav:"fuel_type"`
	Transmission  string   `dynamodbav:"transmission"`
	Drivetrain    string   `dynamodbav:"drivetrain,omitempty"`
	Photos        []string `dynamodbav:"photos,omitempty"`
	Price         string   `dynamodbav:"price"`
	Description   string   `dynamodbav:"description"`
	SellerName    string   `dynamodbav:"seller_name"`
	SellerEmail   string   `dynamodbav:"seller_email"`
	SellerPhone   string   `dynamodbav:"seller_phone"`
	SellerCity    string   `dynamodbav:"seller_city,omitempty"`
	Status        string   `dynamodbav:"status"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// ListingDynamoRepository persists Listing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ListingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IListingRepository = (*ListingDynamoRepository)(nil)

func NewListingDynamoRepository(ddb *dynamodb.Client) *ListingDynamoRepository {
	return &ListingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LISTINGS_TABLE", defaultListingsTableName),
	}
}

func (r *ListingDynamoRepository) Create(ctx context.Context, l entities.Listing) (entities.Listing, error) {
	it := toListingItem(l)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Listing{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Listing{}, err
	}
	return l, nil
}

func (r *ListingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Listing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Listing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Listing{}, nil
	}

	var it listingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Listing{}, err
	}
	return fromListingItem(it), nil
}

func (r *ListingDynamoRepository) List(ctx context.Context) ([]entities.Listing, error) {
	var listings []entities.Listing
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it listingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			listings = append(listings, fromListingItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return listings, nil
}

func toListingItem(l entities.Listing) listingItem {
	return listingItem{
		ID:            l.ID,
		Title:         l.Title,
		Make:          l.Make,
		Model:         l.Model,
		Year:          l.Year,
		Trim:          l.Trim,
		BodyType:      l.BodyType,
		Mileage:       l.Mileage,
		VIN:           l.VIN,
		ExteriorColor: l.ExteriorColor,
		InteriorColor: l.InteriorColor,
		FuelType:      string(l.FuelType),
		Transmission:  string(l.Transmission),
		Drivetrain:    l.Drivetrain,
		Photos:        l.Photos,
		Price:         floatToString(l.Price),
		Description:   l.Description,
		SellerName:    l.SellerName,
		SellerEmail:   l.SellerEmail,
		SellerPhone:   l.SellerPhone,
		SellerCity:    l.SellerCity,
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromListingItem(it listingItem) entities.Listing {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Listing{
		ID:            it.ID,
		Title:         it.Title,
		Make:          it.Make,
		Model:         it.Model,
		Year:          it.Year,
		Trim:          it.Trim,
		BodyType:      it.BodyType,
		Mileage:       it.Mileage,
		VIN:           it.VIN,
		ExteriorColor: it.ExteriorColor,
		InteriorColor: it.InteriorColor,
		FuelType:      entities.FuelType(it.FuelType),
		Transmission:  entities.Transmission(it.Transmission),
		Drivetrain:    it.Drivetrain,
		Photos:        it.Photos,
		Price:         price,
		Description:   it.Description,
		SellerName:    it.SellerName,
		SellerEmail:   it.SellerEmail,
		SellerPhone:   it.SellerPhone,
		SellerCity:    it.SellerCity,
		Status:        entities.ListingStatus(it.Status),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
