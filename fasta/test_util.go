// Mock S3 Service
package fasta

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
)

type object struct {
	content []byte
}

type bucket struct {
	items map[string]*object
}

func newBucket() *bucket {
	return &bucket{
		items: make(map[string]*object),
	}
}

// testS3Service represents a S3 service as defined by the aws-sdk-go S3 API
type testS3Service struct {
	buckets map[string]*bucket
}

func newTestS3Service() *testS3Service {
	return &testS3Service{
		buckets: make(map[string]*bucket),
	}
}

// Put is a helper method to set key to a value byte slice
func (m *testS3Service) Put(bucketName string, key string, value []byte) {
	b, bucketExists := m.buckets[bucketName]
	if !bucketExists {
		b = newBucket()
		m.buckets[bucketName] = b
	}
	b.items[key] = &object{
		content: value,
	}
}

// GetObject is a minimal mock implementation of the S3 GetObject API
// method. This currently only supports the Key parameter and the Body
// response parameter.
func (m *testS3Service) GetObject(input *s3.GetObjectInput) (output *s3.GetObjectOutput, err error) {
	b, bucketExists := m.buckets[*input.Bucket]
	if !bucketExists {
		err = awserr.New(fmt.Sprintf("%d", http.StatusNotFound), "No such entity", fmt.Errorf("bucket %q does not exist", *input.Bucket))
		return
	}

	obj, keyExists := b.items[*input.Key]
	if !keyExists {
		err = awserr.New(fmt.Sprintf("%d", http.StatusNotFound), "No such entity", fmt.Errorf("key %q does not exist", *input.Key))
		return
	}

	output = &s3.GetObjectOutput{}
	output.Body = ioutil.NopCloser(bytes.NewBuffer(obj.content))
	return
}

// ListObjects is a mock implementation of the S3 ListObjects method. This
// currently only supports the prefix parameter.
func (m *testS3Service) ListObjects(input *s3.ListObjectsInput) (result *s3.ListObjectsOutput, err error) {
	result = &s3.ListObjectsOutput{IsTruncated: aws.Bool(false)}
	b, bucketExists := m.buckets[*input.Bucket]
	if !bucketExists {
		err = awserr.New(fmt.Sprintf("%d", http.StatusNotFound), "No such entity", fmt.Errorf("bucket %q does not exist", *input.Bucket))
		return
	}
	for key := range b.items {
		if input.Prefix != nil {
			if !strings.HasPrefix(key, *input.Prefix) {
				continue
			}
		}
		result.Contents = append(result.Contents, &s3.Object{
			Key: aws.String(key),
		})
	}
	return
}

var _ S3Service = (*testS3Service)(nil)
